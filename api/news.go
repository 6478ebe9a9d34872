package api

import (
	"github.com/aguichard/persosite/workers/news"
	"github.com/gin-gonic/gin"
)

var newsWorker *news.Worker

// SetNewsWorker injects the digest worker so handlers can reach it.
// Called once from main before the server starts.
func SetNewsWorker(w *news.Worker) {
	newsWorker = w
}

// GetNewsDigest handles GET /api/news/digest
func GetNewsDigest(c *gin.Context) {
	if newsWorker == nil {
		RespondData(c, news.EmptyDigest())
		return
	}

	digest := newsWorker.Generator().CachedDigest()
	if digest == nil {
		if newsWorker.Generator().IsGenerating() {
			RespondData(c, news.GeneratingDigest())
			return
		}
		RespondData(c, news.EmptyDigest())
		return
	}

	RespondData(c, digest)
}

// GetNewsInterests handles GET /api/news/interests
func GetNewsInterests(c *gin.Context) {
	if newsWorker == nil {
		RespondList(c, []string{})
		return
	}

	RespondList(c, newsWorker.Interests())
}

// RefreshNewsDigest handles POST /api/news/digest/refresh. A refresh
// already in flight is rejected, never queued.
func RefreshNewsDigest(c *gin.Context) {
	if newsWorker == nil {
		RespondInternalError(c, "News digest is not configured")
		return
	}

	if !newsWorker.Refresh() {
		RespondConflict(c, "A digest generation is already in progress")
		return
	}

	RespondAccepted(c, gin.H{"status": "started"})
}
