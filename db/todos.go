package db

import (
	"database/sql"

	"github.com/google/uuid"
)

// ListTodos retrieves all todos ordered by position then creation time
func ListTodos() ([]Todo, error) {
	rows, err := GetDB().Query(`
		SELECT id, title, done, position, created_at, updated_at
		FROM todos
		ORDER BY position, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		var t Todo
		var done int
		if err := rows.Scan(&t.ID, &t.Title, &done, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Done = done == 1
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// GetTodo retrieves a todo by ID, nil if not found
func GetTodo(id string) (*Todo, error) {
	row := GetDB().QueryRow(`
		SELECT id, title, done, position, created_at, updated_at
		FROM todos
		WHERE id = ?
	`, id)

	var t Todo
	var done int
	err := row.Scan(&t.ID, &t.Title, &done, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Done = done == 1

	return &t, nil
}

// CreateTodo inserts a new todo
func CreateTodo(t *Todo) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := NowMs()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := GetDB().Exec(`
		INSERT INTO todos (id, title, done, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, boolToInt(t.Done), t.Position, t.CreatedAt, t.UpdatedAt)
	return err
}

// UpdateTodo updates an existing todo, returns false if it does not exist
func UpdateTodo(t *Todo) (bool, error) {
	t.UpdatedAt = NowMs()

	result, err := GetDB().Exec(`
		UPDATE todos SET title = ?, done = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, t.Title, boolToInt(t.Done), t.Position, t.UpdatedAt, t.ID)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeleteTodo removes a todo, returns false if it does not exist
func DeleteTodo(id string) (bool, error) {
	result, err := GetDB().Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
