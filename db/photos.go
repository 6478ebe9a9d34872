package db

import (
	"database/sql"

	"github.com/google/uuid"
)

const photoColumns = "id, title, url, description, taken_at, position, created_at, updated_at"

func scanPhoto(row interface{ Scan(...any) error }) (Photo, error) {
	var p Photo
	var description sql.NullString
	var takenAt sql.NullInt64
	err := row.Scan(&p.ID, &p.Title, &p.URL, &description, &takenAt, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	p.Description = StringPtr(description)
	p.TakenAt = IntPtr(takenAt)
	return p, err
}

// ListPhotos retrieves all gallery photos ordered by position
func ListPhotos() ([]Photo, error) {
	rows, err := GetDB().Query(`
		SELECT ` + photoColumns + ` FROM photos ORDER BY position, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

// GetPhoto retrieves a photo by ID, nil if not found
func GetPhoto(id string) (*Photo, error) {
	row := GetDB().QueryRow(`SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)

	p, err := scanPhoto(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePhoto inserts a new photo
func CreatePhoto(p *Photo) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := NowMs()
	p.CreatedAt = now
	p.UpdatedAt = now

	var takenAt sql.NullInt64
	if p.TakenAt != nil {
		takenAt = sql.NullInt64{Int64: *p.TakenAt, Valid: true}
	}

	_, err := GetDB().Exec(`
		INSERT INTO photos (id, title, url, description, taken_at, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.URL, NullString(p.Description), takenAt, p.Position, p.CreatedAt, p.UpdatedAt)
	return err
}

// UpdatePhoto updates an existing photo, returns false if it does not exist
func UpdatePhoto(p *Photo) (bool, error) {
	p.UpdatedAt = NowMs()

	var takenAt sql.NullInt64
	if p.TakenAt != nil {
		takenAt = sql.NullInt64{Int64: *p.TakenAt, Valid: true}
	}

	result, err := GetDB().Exec(`
		UPDATE photos SET title = ?, url = ?, description = ?, taken_at = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, p.Title, p.URL, NullString(p.Description), takenAt, p.Position, p.UpdatedAt, p.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeletePhoto removes a photo, returns false if it does not exist
func DeletePhoto(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM photos WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}
