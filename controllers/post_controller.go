package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/middleware"
	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// PostController manages posts plus their like and attachment sub-resources.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a PostController.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

func postDetailCacheKey(id uint) string {
	return fmt.Sprintf("cache:post:detail:%d", id)
}

// ListPosts returns every post; zero rows maps to 404.
func (p *PostController) ListPosts(ctx *gin.Context) {
	var posts []models.Post
	if err := p.db.Find(&posts).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(posts) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No posts found")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost returns a single post, served from the Redis cache when warm.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}

	if b, ok := utils.CacheGetBytes(postDetailCacheKey(id)); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	utils.CacheSetJSON(postDetailCacheKey(id), post, time.Hour)
	ctx.JSON(http.StatusOK, post)
}

// CreatePost creates a post. The author reference comes from the body,
// matching the clients; the session only gates access.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		AuthorID uint   `json:"authorId"`
		Content  string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.AuthorID == 0 || req.Content == "" {
		utils.Message(ctx, http.StatusBadRequest, "Author ID and content are required")
		return
	}

	// The body's author is trusted as-is; a mismatch with the session user
	// is only logged.
	if sessionUser, ok := middleware.SessionUserID(ctx); ok && sessionUser != req.AuthorID && utils.Sugar != nil {
		utils.Sugar.Debugf("session user %d creating post for author %d", sessionUser, req.AuthorID)
	}

	post := models.Post{AuthorID: req.AuthorID, Content: utils.Sanitize(req.Content)}
	if err := p.db.Create(&post).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost replaces a post's content.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	post.Content = utils.Sanitize(req.Content)
	if err := p.db.Save(&post).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidateByPrefix(postDetailCacheKey(id))
	ctx.JSON(http.StatusOK, post)
}

// DeletePost removes a post. Comments, likes and attachments under it are
// left in place; nothing cascades.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := p.db.Delete(&post).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidateByPrefix(postDetailCacheKey(id))
	ctx.Status(http.StatusNoContent)
}

// ListPostLikes returns the likes on a post.
func (p *PostController) ListPostLikes(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this post")
		return
	}
	var likes []models.Like
	if err := p.db.Where("post_id = ?", id).Find(&likes).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(likes) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this post")
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// LikePost records body.userId liking the post. A second like for the
// same pair is a conflict, never a duplicate row.
func (p *PostController) LikePost(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	var req struct {
		UserID uint `json:"userId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var existing models.Like
	err := p.db.Where("post_id = ? AND user_id = ?", id, req.UserID).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "User already liked this post")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	like := models.Like{UserID: req.UserID, PostID: &id}
	if err := p.db.Create(&like).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "User already liked this post")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

// UnlikePost removes the like of :userId on the post.
func (p *PostController) UnlikePost(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	userID, ok := parseID(ctx.Param("userId"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Like not found")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var like models.Like
	err := p.db.Where("post_id = ? AND user_id = ?", id, userID).First(&like).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Like not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := p.db.Delete(&like).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAttachments returns the attachment rows for a post.
func (p *PostController) ListAttachments(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No attachments found for this post")
		return
	}
	var attachments []models.PostAttachment
	if err := p.db.Where("post_id = ?", id).Find(&attachments).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(attachments) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No attachments found for this post")
		return
	}
	ctx.JSON(http.StatusOK, attachments)
}

// AttachMedia links body.mediaId to the post. The post is verified; the
// media row deliberately is not.
func (p *PostController) AttachMedia(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	var req struct {
		MediaID uint `json:"mediaId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.MediaID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "Media ID is required")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	attachment := models.PostAttachment{PostID: id, MediaID: req.MediaID}
	if err := p.db.Create(&attachment).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attachment)
}

// DetachMedia removes the attachment of :mediaId from the post.
func (p *PostController) DetachMedia(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	mediaID, ok := parseID(ctx.Param("mediaId"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Attachment not found")
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var attachment models.PostAttachment
	err := p.db.Where("post_id = ? AND media_id = ?", id, mediaID).First(&attachment).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Attachment not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := p.db.Delete(&attachment).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
