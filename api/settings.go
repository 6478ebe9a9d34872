package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// GetSettings handles GET /api/settings
func GetSettings(c *gin.Context) {
	settings, err := db.GetAllSettings()
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")
		RespondInternalError(c, "Failed to get settings")
		return
	}

	RespondData(c, settings)
}

// UpdateSettings handles PUT /api/settings. Accepts a partial map; only
// the provided keys are written.
func UpdateSettings(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if len(body) == 0 {
		RespondValidationError(c, "No settings provided")
		return
	}

	if err := db.UpdateSettings(body); err != nil {
		log.Error().Err(err).Msg("failed to update settings")
		RespondInternalError(c, "Failed to update settings")
		return
	}

	// Log level changes take effect immediately
	if level, ok := body["log_level"]; ok {
		log.SetLevel(level)
	}

	settings, err := db.GetAllSettings()
	if err != nil {
		RespondInternalError(c, "Failed to get settings")
		return
	}

	RespondData(c, settings)
}
