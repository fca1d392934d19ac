package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vibely/vibely/config"
	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// MediaController manages uploaded files recorded against posts.
type MediaController struct {
	db *gorm.DB
}

// NewMediaController creates a MediaController.
func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{db: db}
}

// ListPostMedia returns the media rows for a post.
func (m *MediaController) ListPostMedia(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("post_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No media found for this post")
		return
	}
	var media []models.Media
	if err := m.db.Where("post_id = ?", postID).Find(&media).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(media) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No media found for this post")
		return
	}
	ctx.JSON(http.StatusOK, media)
}

// GetMedia returns a single media row.
func (m *MediaController) GetMedia(ctx *gin.Context) {
	mediaID, ok := parseID(ctx.Param("media_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Media not found")
		return
	}
	var media models.Media
	if err := m.db.First(&media, mediaID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Media not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, media)
}

// Upload accepts a multipart file for an existing post, stores it under
// the upload directory with a random name, and records the row.
func (m *MediaController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		utils.Message(ctx, http.StatusBadRequest, "File is required")
		return
	}
	postID, ok := parseID(ctx.PostForm("post_id"))
	if !ok {
		utils.Message(ctx, http.StatusBadRequest, "Post ID is required")
		return
	}

	var post models.Post
	if err := m.db.First(&post, postID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	uploadDir := config.Get().UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	dst := filepath.Join(uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, dst); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	media := models.Media{
		PostID:   postID,
		FilePath: dst,
		FileType: file.Header.Get("Content-Type"),
	}
	if err := m.db.Create(&media).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, media)
}

// DeleteMedia removes the row and best-effort removes the file on disk.
func (m *MediaController) DeleteMedia(ctx *gin.Context) {
	mediaID, ok := parseID(ctx.Param("media_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Media not found")
		return
	}
	var media models.Media
	if err := m.db.First(&media, mediaID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Media not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := m.db.Delete(&media).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if err := os.Remove(media.FilePath); err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("failed to remove media file %s: %v", media.FilePath, err)
	}
	ctx.Status(http.StatusNoContent)
}
