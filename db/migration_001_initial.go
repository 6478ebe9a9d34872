package db

import (
	"database/sql"
)

func init() {
	RegisterMigration(Migration{
		Version:     1,
		Description: "Initial schema",
		Up:          migration001Initial,
	})
}

func migration001Initial(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE todos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			done INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_todos_position ON todos(position);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE posts (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			published INTEGER NOT NULL DEFAULT 0,
			published_at INTEGER,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_posts_published ON posts(published, published_at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE photos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT,
			taken_at INTEGER,
			position INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_photos_position ON photos(position);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE wishlist_games (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			platform TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 0,
			notes TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_wishlist_priority ON wishlist_games(priority DESC);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE game_rankings (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			rank INTEGER NOT NULL,
			rating REAL,
			review TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_rankings_rank ON game_rankings(rank);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE paintings (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'backlog',
			image_url TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_paintings_status ON paintings(status);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	return tx.Commit()
}
