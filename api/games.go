package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// Wishlist handlers

// GetWishlist handles GET /api/wishlist
func GetWishlist(c *gin.Context) {
	games, err := db.ListWishlist()
	if err != nil {
		log.Error().Err(err).Msg("failed to list wishlist")
		RespondInternalError(c, "Failed to list wishlist")
		return
	}

	RespondList(c, games)
}

// GetWishlistGame handles GET /api/wishlist/:id
func GetWishlistGame(c *gin.Context) {
	game, err := db.GetWishlistGame(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get wishlist game")
		return
	}
	if game == nil {
		RespondNotFound(c, "Wishlist game not found")
		return
	}

	RespondData(c, game)
}

// CreateWishlistGame handles POST /api/wishlist
func CreateWishlistGame(c *gin.Context) {
	var body struct {
		Title    string  `json:"title"`
		Platform string  `json:"platform"`
		Priority int     `json:"priority"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Title == "" {
		RespondValidationError(c, "Title is required")
		return
	}

	game := db.WishlistGame{
		Title:    body.Title,
		Platform: body.Platform,
		Priority: body.Priority,
		Notes:    body.Notes,
	}
	if err := db.CreateWishlistGame(&game); err != nil {
		log.Error().Err(err).Msg("failed to create wishlist game")
		RespondInternalError(c, "Failed to create wishlist game")
		return
	}

	RespondCreated(c, game)
}

// UpdateWishlistGame handles PUT /api/wishlist/:id
func UpdateWishlistGame(c *gin.Context) {
	existing, err := db.GetWishlistGame(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get wishlist game")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Wishlist game not found")
		return
	}

	var body struct {
		Title    *string `json:"title"`
		Platform *string `json:"platform"`
		Priority *int    `json:"priority"`
		Notes    *string `json:"notes"`
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
	if body.Platform != nil {
		existing.Platform = *body.Platform
	}
	if body.Priority != nil {
		existing.Priority = *body.Priority
	}
	if body.Notes != nil {
		existing.Notes = body.Notes
	}

	if _, err := db.UpdateWishlistGame(existing); err != nil {
		log.Error().Err(err).Msg("failed to update wishlist game")
		RespondInternalError(c, "Failed to update wishlist game")
		return
	}

	RespondData(c, existing)
}

// DeleteWishlistGame handles DELETE /api/wishlist/:id
func DeleteWishlistGame(c *gin.Context) {
	found, err := db.DeleteWishlistGame(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to delete wishlist game")
		return
	}
	if !found {
		RespondNotFound(c, "Wishlist game not found")
		return
	}

	RespondNoContent(c)
}

// Ranking handlers

// GetRankings handles GET /api/rankings
func GetRankings(c *gin.Context) {
	rankings, err := db.ListRankings()
	if err != nil {
		log.Error().Err(err).Msg("failed to list rankings")
		RespondInternalError(c, "Failed to list rankings")
		return
	}

	RespondList(c, rankings)
}

// GetRanking handles GET /api/rankings/:id
func GetRanking(c *gin.Context) {
	ranking, err := db.GetRanking(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get ranking")
		return
	}
	if ranking == nil {
		RespondNotFound(c, "Ranking not found")
		return
	}

	RespondData(c, ranking)
}

// CreateRanking handles POST /api/rankings
func CreateRanking(c *gin.Context) {
	var body struct {
		Title  string   `json:"title"`
		Rank   int      `json:"rank"`
		Rating *float64 `json:"rating"`
		Review *string  `json:"review"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Title == "" {
		RespondValidationError(c, "Title is required")
		return
	}
	if body.Rank < 1 {
		RespondValidationError(c, "Rank must be at least 1")
		return
	}

	ranking := db.GameRanking{
		Title:  body.Title,
		Rank:   body.Rank,
		Rating: body.Rating,
		Review: body.Review,
	}
	if err := db.CreateRanking(&ranking); err != nil {
		log.Error().Err(err).Msg("failed to create ranking")
		RespondInternalError(c, "Failed to create ranking")
		return
	}

	RespondCreated(c, ranking)
}

// UpdateRanking handles PUT /api/rankings/:id
func UpdateRanking(c *gin.Context) {
	existing, err := db.GetRanking(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get ranking")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Ranking not found")
		return
	}

	var body struct {
		Title  *string  `json:"title"`
		Rank   *int     `json:"rank"`
		Rating *float64 `json:"rating"`
		Review *string  `json:"review"`
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
	if body.Rank != nil {
		if *body.Rank < 1 {
			RespondValidationError(c, "Rank must be at least 1")
			return
		}
		existing.Rank = *body.Rank
	}
	if body.Rating != nil {
		existing.Rating = body.Rating
	}
	if body.Review != nil {
		existing.Review = body.Review
	}

	if _, err := db.UpdateRanking(existing); err != nil {
		log.Error().Err(err).Msg("failed to update ranking")
		RespondInternalError(c, "Failed to update ranking")
		return
	}

	RespondData(c, existing)
}

// DeleteRanking handles DELETE /api/rankings/:id
func DeleteRanking(c *gin.Context) {
	found, err := db.DeleteRanking(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to delete ranking")
		return
	}
	if !found {
		RespondNotFound(c, "Ranking not found")
		return
	}

	RespondNoContent(c)
}
