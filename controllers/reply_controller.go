package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// ReplyController manages replies under comments and their likes; the
// surface mirrors the comment family one level down.
type ReplyController struct {
	db *gorm.DB
}

// NewReplyController creates a ReplyController.
func NewReplyController(db *gorm.DB) *ReplyController {
	return &ReplyController{db: db}
}

// ListReplies returns the replies on a comment.
func (r *ReplyController) ListReplies(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No replies found for this comment")
		return
	}
	var replies []models.Reply
	if err := r.db.Where("comment_id = ?", commentID).Find(&replies).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(replies) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No replies found for this comment")
		return
	}
	ctx.JSON(http.StatusOK, replies)
}

// CreateReply adds a reply to an existing comment.
func (r *ReplyController) CreateReply(ctx *gin.Context) {
	commentID, ok := parseID(ctx.Param("comment_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Comment not found")
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

	var comment models.Comment
	if err := r.db.First(&comment, commentID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Comment not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	reply := models.Reply{CommentID: commentID, Author: req.Author, Content: utils.Sanitize(req.Content)}
	if err := r.db.Create(&reply).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, reply)
}

// DeleteReply removes a single reply.
func (r *ReplyController) DeleteReply(ctx *gin.Context) {
	replyID, ok := parseID(ctx.Param("reply_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Reply not found")
		return
	}
	var reply models.Reply
	if err := r.db.First(&reply, replyID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Reply not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := r.db.Delete(&reply).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Reply deleted successfully")
}

// ListReplyLikes returns the likes on a reply.
func (r *ReplyController) ListReplyLikes(ctx *gin.Context) {
	replyID, ok := parseID(ctx.Param("reply_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this reply")
		return
	}
	var likes []models.Like
	if err := r.db.Where("reply_id = ?", replyID).Find(&likes).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(likes) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No likes found for this reply")
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// LikeReply records body.user_id liking the reply, at most once per pair.
func (r *ReplyController) LikeReply(ctx *gin.Context) {
	replyID, ok := parseID(ctx.Param("reply_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Reply not found")
		return
	}
	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	var reply models.Reply
	if err := r.db.First(&reply, replyID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Reply not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var existing models.Like
	err := r.db.Where("reply_id = ? AND user_id = ?", replyID, req.UserID).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "User already liked this reply")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	like := models.Like{UserID: req.UserID, ReplyID: &replyID}
	if err := r.db.Create(&like).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "User already liked this reply")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

// UnlikeReply removes like :like_id from the reply.
func (r *ReplyController) UnlikeReply(ctx *gin.Context) {
	replyID, ok := parseID(ctx.Param("reply_id"))
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
	err := r.db.Where("id = ? AND reply_id = ?", likeID, replyID).First(&like).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Like not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := r.db.Delete(&like).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Like deleted successfully")
}
