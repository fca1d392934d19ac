package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// AuthController handles signup, login and session lifecycle. Credentials
// are compared as stored, by literal equality; see the model notes.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Signup registers a new user account.
func (a *AuthController) Signup(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Message(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	var existing models.User
	err := a.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "User already exists")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	user := models.User{Email: req.Email, Password: req.Password}
	if err := a.db.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "User already exists")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login verifies email and password and establishes a session.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var user models.User
	err := a.db.Where("email = ? AND password = ?", req.Email, req.Password).First(&user).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := utils.IssueSession(ctx, user.ID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout destroys the session. Calling it without a session succeeds too.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.ClearSession(ctx)
	utils.Message(ctx, http.StatusOK, "Logged out")
}

// Status reports whether the caller holds a live session. Never errors.
func (a *AuthController) Status(ctx *gin.Context) {
	token := utils.CurrentSessionToken(ctx)
	if userID, ok := utils.LookupSession(token); ok {
		ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Logged in as user %d", userID), "userId": userID})
		return
	}
	utils.Message(ctx, http.StatusOK, "Not logged in")
}
