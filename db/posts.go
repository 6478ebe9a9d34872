package db

import (
	"database/sql"

	"github.com/google/uuid"
)

const postColumns = "id, slug, title, content, published, published_at, created_at, updated_at"

func scanPost(row interface{ Scan(...any) error }) (Post, error) {
	var p Post
	var published int
	var publishedAt sql.NullInt64
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &published, &publishedAt, &p.CreatedAt, &p.UpdatedAt)
	p.Published = published == 1
	p.PublishedAt = IntPtr(publishedAt)
	return p, err
}

// ListPosts retrieves posts, optionally restricted to published ones.
// Published posts come first by publication date, drafts by update time.
func ListPosts(publishedOnly bool) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY published_at DESC, updated_at DESC`
	if publishedOnly {
		query = `SELECT ` + postColumns + ` FROM posts WHERE published = 1 ORDER BY published_at DESC`
	}

	rows, err := GetDB().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// GetPost retrieves a post by ID or slug, nil if not found
func GetPost(idOrSlug string) (*Post, error) {
	row := GetDB().QueryRow(`
		SELECT `+postColumns+` FROM posts WHERE id = ? OR slug = ?
	`, idOrSlug, idOrSlug)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// SlugExists reports whether a slug is already taken by another post
func SlugExists(slug, excludeID string) (bool, error) {
	var count int
	err := GetDB().QueryRow(
		"SELECT COUNT(*) FROM posts WHERE slug = ? AND id != ?", slug, excludeID,
	).Scan(&count)
	return count > 0, err
}

// CreatePost inserts a new post
func CreatePost(p *Post) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := NowMs()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	var publishedAt sql.NullInt64
	if p.PublishedAt != nil {
		publishedAt = sql.NullInt64{Int64: *p.PublishedAt, Valid: true}
	}

	_, err := GetDB().Exec(`
		INSERT INTO posts (id, slug, title, content, published, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Slug, p.Title, p.Content, boolToInt(p.Published), publishedAt, p.CreatedAt, p.UpdatedAt)
	return err
}

// UpdatePost updates an existing post, returns false if it does not exist
func UpdatePost(p *Post) (bool, error) {
	now := NowMs()
	p.UpdatedAt = now
	// First transition to published stamps the publication date
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	var publishedAt sql.NullInt64
	if p.PublishedAt != nil {
		publishedAt = sql.NullInt64{Int64: *p.PublishedAt, Valid: true}
	}

	result, err := GetDB().Exec(`
		UPDATE posts SET slug = ?, title = ?, content = ?, published = ?, published_at = ?, updated_at = ?
		WHERE id = ?
	`, p.Slug, p.Title, p.Content, boolToInt(p.Published), publishedAt, p.UpdatedAt, p.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeletePost removes a post, returns false if it does not exist
func DeletePost(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}
