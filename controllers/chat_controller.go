package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// ChatController manages two-party chats and their messages.
type ChatController struct {
	db *gorm.DB
}

// NewChatController creates a ChatController.
func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{db: db}
}

// ListUserChats returns every chat the user takes part in, on either side
// of the pair.
func (c *ChatController) ListUserChats(ctx *gin.Context) {
	userID, ok := parseID(ctx.Param("user_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No chats found for this user")
		return
	}
	var chats []models.Chat
	if err := c.db.Where("user1_id = ? OR user2_id = ?", userID, userID).Find(&chats).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(chats) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No chats found for this user")
		return
	}
	ctx.JSON(http.StatusOK, chats)
}

// GetChat returns a single chat.
func (c *ChatController) GetChat(ctx *gin.Context) {
	chatID, ok := parseID(ctx.Param("chat_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Chat not found")
		return
	}
	var chat models.Chat
	if err := c.db.First(&chat, chatID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Chat not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chat)
}

// CreateChat opens a chat between two users.
func (c *ChatController) CreateChat(ctx *gin.Context) {
	var req struct {
		User1ID uint `json:"user1_id"`
		User2ID uint `json:"user2_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.User1ID == 0 || req.User2ID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "Both user IDs are required")
		return
	}

	chat := models.Chat{User1ID: req.User1ID, User2ID: req.User2ID}
	if err := c.db.Create(&chat).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, chat)
}

// DeleteChat removes a chat. Its messages stay behind; nothing cascades.
func (c *ChatController) DeleteChat(ctx *gin.Context) {
	chatID, ok := parseID(ctx.Param("chat_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Chat not found")
		return
	}
	var chat models.Chat
	if err := c.db.First(&chat, chatID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Chat not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := c.db.Delete(&chat).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Chat deleted successfully")
}

// ListMessages returns the messages in a chat.
func (c *ChatController) ListMessages(ctx *gin.Context) {
	chatID, ok := parseID(ctx.Param("chat_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No messages found in this chat")
		return
	}
	var messages []models.Message
	if err := c.db.Where("chat_id = ?", chatID).Find(&messages).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(messages) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No messages found in this chat")
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// CreateMessage posts a message into an existing chat.
func (c *ChatController) CreateMessage(ctx *gin.Context) {
	chatID, ok := parseID(ctx.Param("chat_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Chat not found")
		return
	}
	var req struct {
		UserID  uint   `json:"user_id"`
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.Content == "" {
		utils.Message(ctx, http.StatusBadRequest, "User ID and content are required")
		return
	}

	var chat models.Chat
	if err := c.db.First(&chat, chatID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Chat not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	message := models.Message{ChatID: chatID, UserID: req.UserID, Content: utils.Sanitize(req.Content)}
	if err := c.db.Create(&message).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, message)
}

// UpdateMessage replaces a message's content.
func (c *ChatController) UpdateMessage(ctx *gin.Context) {
	messageID, ok := parseID(ctx.Param("message_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Message not found")
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Content == "" {
		utils.Message(ctx, http.StatusBadRequest, "Content is required")
		return
	}

	var message models.Message
	if err := c.db.First(&message, messageID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Message not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	message.Content = utils.Sanitize(req.Content)
	if err := c.db.Save(&message).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, message)
}

// DeleteMessage removes a single message.
func (c *ChatController) DeleteMessage(ctx *gin.Context) {
	messageID, ok := parseID(ctx.Param("message_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Message not found")
		return
	}
	var message models.Message
	if err := c.db.First(&message, messageID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Message not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := c.db.Delete(&message).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Message deleted successfully")
}
