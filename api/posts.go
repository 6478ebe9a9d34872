package api

import (
	"github.com/aguichard/persosite/db"
	"github.com/aguichard/persosite/log"
	"github.com/aguichard/persosite/utils"
	"github.com/gin-gonic/gin"
)

// GetPosts handles GET /api/posts. ?published=true restricts to published posts.
func GetPosts(c *gin.Context) {
	publishedOnly := c.Query("published") == "true"

	posts, err := db.ListPosts(publishedOnly)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")
		RespondInternalError(c, "Failed to list posts")
		return
	}

	RespondList(c, posts)
}

// GetPost handles GET /api/posts/:id, where :id is an ID or a slug
func GetPost(c *gin.Context) {
	post, err := db.GetPost(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")
		RespondInternalError(c, "Failed to get post")
		return
	}
	if post == nil {
		RespondNotFound(c, "Post not found")
		return
	}

	RespondData(c, post)
}

// CreatePost handles POST /api/posts
func CreatePost(c *gin.Context) {
	var body struct {
		Title     string `json:"title"`
		Slug      string `json:"slug"`
		Content   string `json:"content"`
		Published bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if body.Title == "" {
		RespondValidationError(c, "Title is required")
		return
	}

	slug := body.Slug
	if slug == "" {
		slug = utils.Slugify(body.Title)
	}
	if slug == "" {
		RespondValidationError(c, "Slug cannot be derived from title, provide one")
		return
	}

	taken, err := db.SlugExists(slug, "")
	if err != nil {
		RespondInternalError(c, "Failed to check slug")
		return
	}
	if taken {
		RespondConflict(c, "Slug already in use")
		return
	}

	post := db.Post{
		Slug:      slug,
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
	}
	if err := db.CreatePost(&post); err != nil {
		log.Error().Err(err).Msg("failed to create post")
		RespondInternalError(c, "Failed to create post")
		return
	}

	RespondCreated(c, post)
}

// UpdatePost handles PUT /api/posts/:id
func UpdatePost(c *gin.Context) {
	existing, err := db.GetPost(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get post")
		return
	}
	if existing == nil {
		RespondNotFound(c, "Post not found")
		return
	}

	var body struct {
		Title     *string `json:"title"`
		Slug      *string `json:"slug"`
		Content   *string `json:"content"`
		Published *bool   `json:"published"`
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
	if body.Slug != nil && *body.Slug != "" && *body.Slug != existing.Slug {
		taken, err := db.SlugExists(*body.Slug, existing.ID)
		if err != nil {
			RespondInternalError(c, "Failed to check slug")
			return
		}
		if taken {
			RespondConflict(c, "Slug already in use")
			return
		}
		existing.Slug = *body.Slug
	}
	if body.Content != nil {
		existing.Content = *body.Content
	}
	if body.Published != nil {
		existing.Published = *body.Published
	}

	if _, err := db.UpdatePost(existing); err != nil {
		log.Error().Err(err).Msg("failed to update post")
		RespondInternalError(c, "Failed to update post")
		return
	}

	RespondData(c, existing)
}

// DeletePost handles DELETE /api/posts/:id
func DeletePost(c *gin.Context) {
	post, err := db.GetPost(c.Param("id"))
	if err != nil {
		RespondInternalError(c, "Failed to get post")
		return
	}
	if post == nil {
		RespondNotFound(c, "Post not found")
		return
	}

	if _, err := db.DeletePost(post.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete post")
		RespondInternalError(c, "Failed to delete post")
		return
	}

	RespondNoContent(c)
}
