package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// GetPaintings handles GET /api/paintings. ?status= filters by project status.
func GetPaintings(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !db.ValidPaintingStatus(status) {
		RespondValidationError(c, "Unknown painting status")
		return
	}

	paintings, err := db.ListPaintings(status)
	if err != nil {
		log.Error().Err(err).Msg("failed to list paintings")
		RespondInternalError(c, "Failed to list paintings")
		return
	}

	RespondList(c, paintings)
}

// GetPainting handles GET /api/paintings/:id
func GetPainting(c *gin.Context) {
	painting, err := db.GetPainting(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get painting")
		return
	}
	if painting == nil {
		RespondNotFound(c, "Painting not found")
		return
	}

	RespondData(c, painting)
}

// CreatePainting handles POST /api/paintings
func CreatePainting(c *gin.Context) {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Name == "" {
		RespondValidationError(c, "Name is required")
		return
	}
	if body.Status != "" && !db.ValidPaintingStatus(body.Status) {
		RespondValidationError(c, "Unknown painting status")
		return
	}

	painting := db.Painting{
		Name:        body.Name,
		Description: body.Description,
		Status:      body.Status,
		ImageURL:    body.ImageURL,
	}
	if err := db.CreatePainting(&painting); err != nil {
		log.Error().Err(err).Msg("failed to create painting")
		RespondInternalError(c, "Failed to create painting")
		return
	}

	RespondCreated(c, painting)
}

// UpdatePainting handles PUT /api/paintings/:id
func UpdatePainting(c *gin.Context) {
	existing, err := db.GetPainting(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get painting")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Painting not found")
		return
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	if body.Name != nil {
		if *body.Name == "" {
			RespondValidationError(c, "Name cannot be empty")
			return
		}
		existing.Name = *body.Name
	}
	if body.Description != nil {
		existing.Description = body.Description
	}
	if body.Status != nil {
		if !db.ValidPaintingStatus(*body.Status) {
			RespondValidationError(c, "Unknown painting status")
			return
		}
		existing.Status = *body.Status
	}
	if body.ImageURL != nil {
		existing.ImageURL = body.ImageURL
	}

	if _, err := db.UpdatePainting(existing); err != nil {
		log.Error().Err(err).Msg("failed to update painting")
		RespondInternalError(c, "Failed to update painting")
		return
	}

	RespondData(c, existing)
}

// DeletePainting handles DELETE /api/paintings/:id
func DeletePainting(c *gin.Context) {
	found, err := db.DeletePainting(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to delete painting")
		return
	}
	if !found {
		RespondNotFound(c, "Painting not found")
		return
	}

	RespondNoContent(c)
}
