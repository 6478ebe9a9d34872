package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes. Reads are public; everything that
// writes goes through the admin middleware.
func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	admin := api.Group("", AdminMiddleware())

	// Todos
	api.GET("/todos", GetTodos)
	api.GET("/todos/:id", GetTodo)
	admin.POST("/todos", CreateTodo)
	admin.PUT("/todos/:id", UpdateTodo)
	admin.DELETE("/todos/:id", DeleteTodo)

	// Blog posts
	api.GET("/posts", GetPosts)
	api.GET("/posts/:id", GetPost)
	admin.POST("/posts", CreatePost)
	admin.PUT("/posts/:id", UpdatePost)
	admin.DELETE("/posts/:id", DeletePost)

	// Photo gallery
	api.GET("/photos", GetPhotos)
	api.GET("/photos/:id", GetPhoto)
	admin.POST("/photos", CreatePhoto)
	admin.PUT("/photos/:id", UpdatePhoto)
	admin.DELETE("/photos/:id", DeletePhoto)

	// Game wishlist
	api.GET("/wishlist", GetWishlist)
	api.GET("/wishlist/:id", GetWishlistGame)
	admin.POST("/wishlist", CreateWishlistGame)
	admin.PUT("/wishlist/:id", UpdateWishlistGame)
	admin.DELETE("/wishlist/:id", DeleteWishlistGame)

	// Game rankings
	api.GET("/rankings", GetRankings)
	api.GET("/rankings/:id", GetRanking)
	admin.POST("/rankings", CreateRanking)
	admin.PUT("/rankings/:id", UpdateRanking)
	admin.DELETE("/rankings/:id", DeleteRanking)

	// Painting projects
	api.GET("/paintings", GetPaintings)
	api.GET("/paintings/:id", GetPainting)
	admin.POST("/paintings", CreatePainting)
	admin.PUT("/paintings/:id", UpdatePainting)
	admin.DELETE("/paintings/:id", DeletePainting)

	// News digest
	api.GET("/news/digest", GetNewsDigest)
	api.GET("/news/interests", GetNewsInterests)
	admin.POST("/news/digest/refresh", RefreshNewsDigest)

	// Settings
	api.GET("/settings", GetSettings)
	admin.PUT("/settings", UpdateSettings)

	// Stats
	api.GET("/stats", GetStats)
}
