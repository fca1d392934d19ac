package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// AdminController handles the separate admin account namespace. Admin
// registration requires an existing admin id, so the first row has to be
// seeded directly in the database.
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an AdminController.
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// Register creates a new admin account, vouched for by an existing one.
func (a *AdminController) Register(ctx *gin.Context) {
	var req struct {
		AdminID  uint   `json:"admin_id"`
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

	var sponsor models.AdminAccount
	if err := a.db.First(&sponsor, req.AdminID).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusForbidden, "Forbidden")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var existing models.AdminAccount
	err := a.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "Admin user already exists")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	admin := models.AdminAccount{Email: req.Email, Password: req.Password}
	if err := a.db.Create(&admin).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "Admin user already exists")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": admin})
}

// Login verifies admin credentials. No session is established; admin
// routes are gated by the role header alone.
func (a *AdminController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var admin models.AdminAccount
	err := a.db.Where("email = ? AND password = ?", req.Email, req.Password).First(&admin).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": admin})
}
