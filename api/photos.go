package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// GetPhotos handles GET /api/photos
func GetPhotos(c *gin.Context) {
	photos, err := db.ListPhotos()
	if err != nil {
		log.Error().Err(err).Msg("failed to list photos")
		RespondInternalError(c, "Failed to list photos")
		return
	}

	RespondList(c, photos)
}

// GetPhoto handles GET /api/photos/:id
func GetPhoto(c *gin.Context) {
	photo, err := db.GetPhoto(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to get photo")
		RespondInternalError(c, "Failed to get photo")
		return
	}
	if photo == nil {
		RespondNotFound(c, "Photo not found")
		return
	}

	RespondData(c, photo)
}

// CreatePhoto handles POST /api/photos
func CreatePhoto(c *gin.Context) {
	var body struct {
		Title       string  `json:"title"`
		URL         string  `json:"url"`
		Description *string `json:"description"`
		TakenAt     *int64  `json:"takenAt"`
		Position    int     `json:"position"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Title == "" || body.URL == "" {
		RespondValidationError(c, "Title and url are required")
		return
	}

	photo := db.Photo{
		Title:       body.Title,
		URL:         body.URL,
		Description: body.Description,
		TakenAt:     body.TakenAt,
		Position:    body.Position,
	}
	if err := db.CreatePhoto(&photo); err != nil {
		log.Error().Err(err).Msg("failed to create photo")
		RespondInternalError(c, "Failed to create photo")
		return
	}

	RespondCreated(c, photo)
}

// UpdatePhoto handles PUT /api/photos/:id
func UpdatePhoto(c *gin.Context) {
	existing, err := db.GetPhoto(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get photo")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Photo not found")
		return
	}

	var body struct {
		Title       *string `json:"title"`
		URL         *string `json:"url"`
		Description *string `json:"description"`
		TakenAt     *int64  `json:"takenAt"`
		Position    *int    `json:"position"`
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
	if body.URL != nil {
		if *body.URL == "" {
			RespondValidationError(c, "URL cannot be empty")
			return
		}
		existing.URL = *body.URL
	}
	if body.Description != nil {
		existing.Description = body.Description
	}
	if body.TakenAt != nil {
		existing.TakenAt = body.TakenAt
	}
	if body.Position != nil {
		existing.Position = *body.Position
	}

	if _, err := db.UpdatePhoto(existing); err != nil {
		log.Error().Err(err).Msg("failed to update photo")
		RespondInternalError(c, "Failed to update photo")
		return
	}

	RespondData(c, existing)
}

// DeletePhoto handles DELETE /api/photos/:id
func DeletePhoto(c *gin.Context) {
	found, err := db.DeletePhoto(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete photo")
		RespondInternalError(c, "Failed to delete photo")
		return
	}
	if !found {
		RespondNotFound(c, "Photo not found")
		return
	}

	RespondNoContent(c)
}
