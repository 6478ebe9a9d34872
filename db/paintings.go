package db

import (
	"database/sql"

	"github.com/google/uuid"
)

const paintingColumns = "id, name, description, status, image_url, created_at, updated_at"

func scanPainting(row interface{ Scan(...any) error }) (Painting, error) {
	var p Painting
	var description, imageURL sql.NullString
	err := row.Scan(&p.ID, &p.Name, &description, &p.Status, &imageURL, &p.CreatedAt, &p.UpdatedAt)
	p.Description = StringPtr(description)
	p.ImageURL = StringPtr(imageURL)
	return p, err
}

// ListPaintings retrieves painting projects, optionally filtered by status
func ListPaintings(status string) ([]Painting, error) {
	query := `SELECT ` + paintingColumns + ` FROM paintings ORDER BY updated_at DESC`
	args := []any{}
	if status != "" {
		query = `SELECT ` + paintingColumns + ` FROM paintings WHERE status = ? ORDER BY updated_at DESC`
		args = append(args, status)
	}

	rows, err := GetDB().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paintings []Painting
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, err
		}
		paintings = append(paintings, p)
	}

	return paintings, rows.Err()
}

// GetPainting retrieves a painting project by ID, nil if not found
func GetPainting(id string) (*Painting, error) {
	row := GetDB().QueryRow(`SELECT `+paintingColumns+` FROM paintings WHERE id = ?`, id)

	p, err := scanPainting(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePainting inserts a new painting project
func CreatePainting(p *Painting) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = PaintingStatusBacklog
	}
	now := NowMs()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := GetDB().Exec(`
		INSERT INTO paintings (id, name, description, status, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, NullString(p.Description), p.Status, NullString(p.ImageURL), p.CreatedAt, p.UpdatedAt)
	return err
}

// UpdatePainting updates an existing painting project, returns false if it does not exist
func UpdatePainting(p *Painting) (bool, error) {
	p.UpdatedAt = NowMs()

	result, err := GetDB().Exec(`
		UPDATE paintings SET name = ?, description = ?, status = ?, image_url = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, NullString(p.Description), p.Status, NullString(p.ImageURL), p.UpdatedAt, p.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeletePainting removes a painting project, returns false if it does not exist
func DeletePainting(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM paintings WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}
