package db

import (
	"database/sql"
	"time"
)

// Todo represents an item on the todo list
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	Position  int    `json:"position"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Post represents a blog post
type Post struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Published   bool    `json:"published"`
	PublishedAt *int64  `json:"publishedAt,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// Photo represents a gallery photo
type Photo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description,omitempty"`
	TakenAt     *int64  `json:"takenAt,omitempty"`
	Position    int     `json:"position"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// WishlistGame represents a video game on the wishlist
type WishlistGame struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Platform  string  `json:"platform"`
	Priority  int     `json:"priority"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// GameRanking represents a ranked, played game
type GameRanking struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Rank      int      `json:"rank"`
	Rating    *float64 `json:"rating,omitempty"`
	Review    *string  `json:"review,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Painting status values
const (
	PaintingStatusBacklog    = "backlog"
	PaintingStatusInProgress = "in_progress"
	PaintingStatusDone       = "done"
)

// Painting represents a painting project
type Painting struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// ValidPaintingStatus reports whether s is a known painting status
func ValidPaintingStatus(s string) bool {
	return s == PaintingStatusBacklog || s == PaintingStatusInProgress || s == PaintingStatusDone
}

// NowMs returns the current time as Unix milliseconds
func NowMs() int64 {
	return time.Now().UnixMilli()
}

// NullString converts *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// IntPtr converts sql.NullInt64 to *int64
func IntPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}

// FloatPtr converts sql.NullFloat64 to *float64
func FloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}
