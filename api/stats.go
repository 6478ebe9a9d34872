package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/aguichard/persosite/workers/news"
	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/stats
func GetStats(c *gin.Context) {
	stats, err := db.GetSiteStats()
	if err != nil {
		log.Error().Err(err).Msg("failed to get site stats")
		RespondInternalError(c, "Failed to get stats")
		return
	}

	digestStatus := news.StatusEmpty
	if newsWorker != nil {
		if digest := newsWorker.Generator().CachedDigest(); digest != nil {
			digestStatus = digest.Status
		}
		if newsWorker.Generator().IsGenerating() {
			digestStatus = news.StatusGenerating
		}
	}

	RespondData(c, gin.H{
		"content":      stats,
		"digestStatus": digestStatus,
	})
}
