package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// NotificationController manages per-user notifications.
type NotificationController struct {
	db *gorm.DB
}

// NewNotificationController creates a NotificationController.
func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db}
}

// ListNotifications returns a user's notifications.
func (n *NotificationController) ListNotifications(ctx *gin.Context) {
	userID, ok := parseID(ctx.Param("user_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No notifications found for this user")
		return
	}
	var notifications []models.Notification
	if err := n.db.Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(notifications) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No notifications found for this user")
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// CreateNotification records a notification for an existing user.
func (n *NotificationController) CreateNotification(ctx *gin.Context) {
	userID, ok := parseID(ctx.Param("user_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "User not found")
		return
	}
	var req struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Type == "" || req.Message == "" {
		utils.Message(ctx, http.StatusBadRequest, "Type and message are required")
		return
	}

	var user models.User
	if err := n.db.First(&user, userID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	notification := models.Notification{UserID: userID, Type: req.Type, Message: req.Message}
	if err := n.db.Create(&notification).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, notification)
}

// UpdateNotification sets the read flag. The body must carry the flag
// explicitly; a pointer distinguishes false from absent.
func (n *NotificationController) UpdateNotification(ctx *gin.Context) {
	notificationID, ok := parseID(ctx.Param("notification_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Notification not found")
		return
	}
	var req struct {
		Read *bool `json:"read"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Read == nil {
		utils.Message(ctx, http.StatusBadRequest, "Read status is required")
		return
	}

	var notification models.Notification
	if err := n.db.First(&notification, notificationID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Notification not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	notification.Read = *req.Read
	if err := n.db.Save(&notification).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notification)
}

// DeleteNotification removes a notification.
func (n *NotificationController) DeleteNotification(ctx *gin.Context) {
	notificationID, ok := parseID(ctx.Param("notification_id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Notification not found")
		return
	}
	var notification models.Notification
	if err := n.db.First(&notification, notificationID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Notification not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := n.db.Delete(&notification).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "Notification deleted successfully")
}
