package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/utils"
)

// UserController manages user CRUD and the follow graph.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a UserController.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// ListUsers returns every user. Zero rows is reported as 404, not an
// empty list; that is the API's contract for every listing.
func (u *UserController) ListUsers(ctx *gin.Context) {
	var users []models.User
	if err := u.db.Find(&users).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(users) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No users found")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns a single user by id.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "User not found")
		return
	}
	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// CreateUser registers a user through the resource endpoint. Email and
// username are both unique.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		utils.Message(ctx, http.StatusBadRequest, "Email, username and password are required")
		return
	}

	var existing models.User
	err := u.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "User already exists")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	user := models.User{Email: req.Email, Username: &req.Username, Password: req.Password}
	if err := u.db.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "User already exists")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUser replaces email, username and password of an existing user.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "User not found")
		return
	}
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	user.Email = req.Email
	if req.Username != "" {
		user.Username = &req.Username
	} else {
		user.Username = nil
	}
	user.Password = req.Password
	if err := u.db.Save(&user).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user. Their posts, likes and edges stay behind;
// nothing cascades.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "User not found")
		return
	}
	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	if err := u.db.Delete(&user).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListFollowers returns the users following :id.
func (u *UserController) ListFollowers(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No followers found")
		return
	}
	var followers []models.User
	sub := u.db.Model(&models.Follow{}).Select("follower_id").Where("user_id = ?", id)
	if err := u.db.Where("id IN (?)", sub).Find(&followers).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(followers) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No followers found")
		return
	}
	ctx.JSON(http.StatusOK, followers)
}

// ListFollowing returns the users that :id follows.
func (u *UserController) ListFollowing(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "No following found")
		return
	}
	var following []models.User
	sub := u.db.Model(&models.Follow{}).Select("user_id").Where("follower_id = ?", id)
	if err := u.db.Where("id IN (?)", sub).Find(&following).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if len(following) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No following found")
		return
	}
	ctx.JSON(http.StatusOK, following)
}

// FollowUser creates the directed edge body.userId -> :id. At most one
// edge may exist per ordered pair; nothing prevents following yourself.
func (u *UserController) FollowUser(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "User not found")
		return
	}
	var req struct {
		UserID uint `json:"userId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	var target models.User
	if err := u.db.First(&target, id).Error; err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	var existing models.Follow
	err := u.db.Where("user_id = ? AND follower_id = ?", id, req.UserID).First(&existing).Error
	if err == nil {
		utils.Message(ctx, http.StatusBadRequest, "Already following this user")
		return
	}
	if !isNotFound(err) {
		utils.InternalError(ctx, err)
		return
	}

	follow := models.Follow{UserID: id, FollowerID: req.UserID}
	if err := u.db.Create(&follow).Error; err != nil {
		if isDuplicate(err) {
			utils.Message(ctx, http.StatusBadRequest, "Already following this user")
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"follow": follow})
}

// UnfollowUser removes the edge body.userId -> :id.
func (u *UserController) UnfollowUser(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusNotFound, "Not following this user")
		return
	}
	var req struct {
		UserID uint `json:"userId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		utils.Message(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	var edge models.Follow
	err := u.db.Where("user_id = ? AND follower_id = ?", id, req.UserID).First(&edge).Error
	if err != nil {
		if isNotFound(err) {
			utils.Message(ctx, http.StatusNotFound, "Not following this user")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if err := u.db.Delete(&edge).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
