package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// CommentController manages comments under posts and their likes.
type CommentController struct {
	db *gorm.DB
}

// NewCommentController creates a CommentController.
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

// ListComments returns the comments on a post.
func (c *CommentController) ListComments(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("post_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No comments found for this post")
		return
	}
	var comments []models.Comment
	if err := c.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(comments) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No comments found for this post")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment to an existing post. Author is the display
// name the client sends, not a user reference.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := parseID(ctx.Param("post_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Post not found")
		return
	}
	var req struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Content == "" || req.Author == "" {
		utils.Message(ctx, http.StatusBadRequest, "Content and author are required")
		return
	}

	var post models.Post
	if err := c.db.First(&post, postID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	comment := models.Comment{PostID: postID, Author: req.Author, Content: utils.Sanitize(req.Content)}
	if err := c.db.Create(&comment).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a single comment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Comment not found")
		return
	}
	var comment models.Comment
	if err := c.db.First(&comment, commentID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Comment not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := c.db.Delete(&comment).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Comment deleted successfully")
}

// ListCommentLikes returns the likes on a comment.
func (c *CommentController) ListCommentLikes(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this comment")
		return
	}
	var likes []models.Like
	if err := c.db.Where("comment_id = ?", commentID).Find(&likes).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(likes) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this comment")
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// LikeComment records body.user_id liking the comment, at most once per pair.
func (c *CommentController) LikeComment(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Comment not found")
		return
	}
	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	var comment models.Comment
	if err := c.db.First(&comment, commentID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Comment not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var existing models.Like
	err := c.db.Where("comment_id = ? AND user_id = ?", commentID, req.UserID).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "User already liked this comment")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	like := models.Like{UserID: req.UserID, CommentID: &commentID}
	if err := c.db.Create(&like).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "User already liked this comment")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

// UnlikeComment removes like :like_id from the comment.
func (c *CommentController) UnlikeComment(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Like not found")
		return
	}
	likeID, ok := parseID(ctx.Param("like_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Like not found")
		return
	}

	var like models.Like
	err := c.db.Where("id = ? AND comment_id = ?", likeID, commentID).First(&like).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Like not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := c.db.Delete(&like).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Like deleted successfully")
}
