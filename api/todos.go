package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// GetTodos handles GET /api/todos
func GetTodos(c *gin.Context) {
	todos, err := db.ListTodos()
	if err != nil {
		log.Error().Err(err).Msg("failed to list todos")
		RespondInternalError(c, "Failed to list todos")
		return
	}

	RespondList(c, todos)
}

// GetTodo handles GET /api/todos/:id
func GetTodo(c *gin.Context) {
	todo, err := db.GetTodo(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")
		RespondInternalError(c, "Failed to get todo")
		return
	}
	if todo == nil {
		RespondNotFound(c, "Todo not found")
		return
	}

	RespondData(c, todo)
}

// CreateTodo handles POST /api/todos
func CreateTodo(c *gin.Context) {
	var body struct {
		Title    string `json:"title"`
		Position int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Title == "" {
		RespondValidationError(c, "Title is required")
		return
	}

	todo := db.Todo{
		Title:    body.Title,
		Position: body.Position,
	}
	if err := db.CreateTodo(&todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")
		RespondInternalError(c, "Failed to create todo")
		return
	}

	RespondCreated(c, todo)
}

// UpdateTodo handles PUT /api/todos/:id
func UpdateTodo(c *gin.Context) {
	existing, err := db.GetTodo(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get todo")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Todo not found")
		return
	}

	var body struct {
		Title    *string `json:"title"`
		Done     *bool   `json:"done"`
		Position *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	if body.Title != nil {
		if *body.Title == "" {
			RespondValidationError(c, "Title cannot be empty")
			return
		}
		existing.Title = *body.Title
	}
	if body.Done != nil {
		existing.Done = *body.Done
	}
	if body.Position != nil {
		existing.Position = *body.Position
	}

	if _, err := db.UpdateTodo(existing); err != nil {
		log.Error().Err(err).Msg("failed to update todo")
		RespondInternalError(c, "Failed to update todo")
		return
	}

	RespondData(c, existing)
}

// DeleteTodo handles DELETE /api/todos/:id
func DeleteTodo(c *gin.Context) {
	found, err := db.DeleteTodo(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete todo")
		RespondInternalError(c, "Failed to delete todo")
		return
	}
	if !found {
		RespondNotFound(c, "Todo not found")
		return
	}

	RespondNoContent(c)
}
