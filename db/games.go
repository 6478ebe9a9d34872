package db

import (
	"database/sql"

	"github.com/google/uuid"
)

// Wishlist

// ListWishlist retrieves all wishlist games, highest priority first
func ListWishlist() ([]WishlistGame, error) {
	rows, err := GetDB().Query(`
		SELECT id, title, platform, priority, notes, created_at, updated_at
		FROM wishlist_games
		ORDER BY priority DESC, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []WishlistGame
	for rows.Next() {
		var g WishlistGame
		var notes sql.NullString
		if err := rows.Scan(&g.ID, &g.Title, &g.Platform, &g.Priority, &notes, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		g.Notes = StringPtr(notes)
		games = append(games, g)
	}

	return games, rows.Err()
}

// GetWishlistGame retrieves a wishlist game by ID, nil if not found
func GetWishlistGame(id string) (*WishlistGame, error) {
	row := GetDB().QueryRow(`
		SELECT id, title, platform, priority, notes, created_at, updated_at
		FROM wishlist_games
		WHERE id = ?
	`, id)

	var g WishlistGame
	var notes sql.NullString
	err := row.Scan(&g.ID, &g.Title, &g.Platform, &g.Priority, &notes, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.Notes = StringPtr(notes)

	return &g, nil
}

// CreateWishlistGame inserts a new wishlist game
func CreateWishlistGame(g *WishlistGame) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := NowMs()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := GetDB().Exec(`
		INSERT INTO wishlist_games (id, title, platform, priority, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Title, g.Platform, g.Priority, NullString(g.Notes), g.CreatedAt, g.UpdatedAt)
	return err
}

// UpdateWishlistGame updates an existing wishlist game, returns false if it does not exist
func UpdateWishlistGame(g *WishlistGame) (bool, error) {
	g.UpdatedAt = NowMs()

	result, err := GetDB().Exec(`
		UPDATE wishlist_games SET title = ?, platform = ?, priority = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, g.Title, g.Platform, g.Priority, NullString(g.Notes), g.UpdatedAt, g.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeleteWishlistGame removes a wishlist game, returns false if it does not exist
func DeleteWishlistGame(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM wishlist_games WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// Rankings

// ListRankings retrieves all game rankings in rank order
func ListRankings() ([]GameRanking, error) {
	rows, err := GetDB().Query(`
		SELECT id, title, rank, rating, review, created_at, updated_at
		FROM game_rankings
		ORDER BY rank
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rankings []GameRanking
	for rows.Next() {
		var r GameRanking
		var rating sql.NullFloat64
		var review sql.NullString
		if err := rows.Scan(&r.ID, &r.Title, &r.Rank, &rating, &review, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		r.Rating = FloatPtr(rating)
		r.Review = StringPtr(review)
		rankings = append(rankings, r)
	}

	return rankings, rows.Err()
}

// GetRanking retrieves a game ranking by ID, nil if not found
func GetRanking(id string) (*GameRanking, error) {
	row := GetDB().QueryRow(`
		SELECT id, title, rank, rating, review, created_at, updated_at
		FROM game_rankings
		WHERE id = ?
	`, id)

	var r GameRanking
	var rating sql.NullFloat64
	var review sql.NullString
	err := row.Scan(&r.ID, &r.Title, &r.Rank, &rating, &review, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.Rating = FloatPtr(rating)
	r.Review = StringPtr(review)

	return &r, nil
}

// CreateRanking inserts a new game ranking
func CreateRanking(r *GameRanking) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := NowMs()
	r.CreatedAt = now
	r.UpdatedAt = now

	var rating sql.NullFloat64
	if r.Rating != nil {
		rating = sql.NullFloat64{Float64: *r.Rating, Valid: true}
	}

	_, err := GetDB().Exec(`
		INSERT INTO game_rankings (id, title, rank, rating, review, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Title, r.Rank, rating, NullString(r.Review), r.CreatedAt, r.UpdatedAt)
	return err
}

// UpdateRanking updates an existing game ranking, returns false if it does not exist
func UpdateRanking(r *GameRanking) (bool, error) {
	r.UpdatedAt = NowMs()

	var rating sql.NullFloat64
	if r.Rating != nil {
		rating = sql.NullFloat64{Float64: *r.Rating, Valid: true}
	}

	result, err := GetDB().Exec(`
		UPDATE game_rankings SET title = ?, rank = ?, rating = ?, review = ?, updated_at = ?
		WHERE id = ?
	`, r.Title, r.Rank, rating, NullString(r.Review), r.UpdatedAt, r.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeleteRanking removes a game ranking, returns false if it does not exist
func DeleteRanking(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM game_rankings WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}
