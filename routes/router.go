package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/vibely/vibely/config"
	"github.com/vibely/vibely/controllers"
	"github.com/vibely/vibely/middleware"
	"github.com/vibely/vibely/utils"
)

// SetupRouter wires every controller onto a gin engine with logging,
// recovery, CORS, metrics and the session guard.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	if accessLogger, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel,
		cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
		r.Use(utils.Ginzap(accessLogger, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(accessLogger, true))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "x-role")
	r.Use(cors.New(corsCfg))

	r.Use(middleware.Metrics())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authCtl := controllers.NewAuthController(db)
	adminCtl := controllers.NewAdminController(db)
	userCtl := controllers.NewUserController(db)
	postCtl := controllers.NewPostController(db)
	commentCtl := controllers.NewCommentController(db)
	replyCtl := controllers.NewReplyController(db)
	mediaCtl := controllers.NewMediaController(db)
	notificationCtl := controllers.NewNotificationController(db)
	chatCtl := controllers.NewChatController(db)

	api := r.Group("/api")

	auth := api.Group("/auth", middleware.RateLimitMiddleware())
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
		auth.GET("/logout", authCtl.Logout)
		auth.GET("/status", authCtl.Status)
	}

	adminAuth := api.Group("/admin/auth", middleware.AdminRequired(), middleware.RateLimitMiddleware())
	{
		adminAuth.POST("/register", adminCtl.Register)
		adminAuth.POST("/login", adminCtl.Login)
	}

	users := api.Group("/users")
	{
		users.GET("", userCtl.ListUsers)
		users.POST("", userCtl.CreateUser)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.DELETE("/:id", userCtl.DeleteUser)
		users.GET("/:id/followers", userCtl.ListFollowers)
		users.GET("/:id/following", userCtl.ListFollowing)
		users.POST("/:id/follow", userCtl.FollowUser)
		users.DELETE("/:id/unfollow", userCtl.UnfollowUser)
	}

	posts := api.Group("/posts", middleware.SessionRequired())
	{
		posts.GET("", postCtl.ListPosts)
		posts.POST("", postCtl.CreatePost)
		posts.GET("/:id", postCtl.GetPost)
		posts.PUT("/:id", postCtl.UpdatePost)
		posts.DELETE("/:id", postCtl.DeletePost)
		posts.GET("/:id/likes", postCtl.ListPostLikes)
		posts.POST("/:id/likes", postCtl.LikePost)
		posts.DELETE("/:id/likes/:userId", postCtl.UnlikePost)
		posts.GET("/:id/attachments", postCtl.ListAttachments)
		posts.POST("/:id/attachments", postCtl.AttachMedia)
		posts.DELETE("/:id/attachments/:mediaId", postCtl.DetachMedia)
	}

	comments := api.Group("/comments", middleware.SessionRequired())
	{
		comments.GET("/post/:post_id", commentCtl.ListComments)
		comments.POST("/post/:post_id", commentCtl.CreateComment)
		comments.DELETE("/:comment_id", commentCtl.DeleteComment)
		comments.GET("/:comment_id/likes", commentCtl.ListCommentLikes)
		comments.POST("/:comment_id/likes", commentCtl.LikeComment)
		comments.DELETE("/:comment_id/likes/:like_id", commentCtl.UnlikeComment)
	}

	replies := api.Group("/replies", middleware.SessionRequired())
	{
		replies.GET("/comment/:comment_id", replyCtl.ListReplies)
		replies.POST("/comment/:comment_id", replyCtl.CreateReply)
		replies.DELETE("/:reply_id", replyCtl.DeleteReply)
		replies.GET("/:reply_id/likes", replyCtl.ListReplyLikes)
		replies.POST("/:reply_id/likes", replyCtl.LikeReply)
		replies.DELETE("/:reply_id/likes/:like_id", replyCtl.UnlikeReply)
	}

	media := api.Group("/media", middleware.SessionRequired())
	{
		media.GET("/post/:post_id", mediaCtl.ListPostMedia)
		media.POST("/upload", mediaCtl.Upload)
		media.GET("/:media_id", mediaCtl.GetMedia)
		media.DELETE("/:media_id", mediaCtl.DeleteMedia)
	}

	notifications := api.Group("/notifications", middleware.SessionRequired())
	{
		notifications.GET("/user/:user_id", notificationCtl.ListNotifications)
		notifications.POST("/user/:user_id", notificationCtl.CreateNotification)
		notifications.PUT("/:notification_id", notificationCtl.UpdateNotification)
		notifications.DELETE("/:notification_id", notificationCtl.DeleteNotification)
	}

	chats := api.Group("/chats")
	{
		chats.POST("", chatCtl.CreateChat)
		chats.GET("/user/:user_id", chatCtl.ListUserChats)
		chats.GET("/:chat_id", chatCtl.GetChat)
		chats.DELETE("/:chat_id", chatCtl.DeleteChat)
		chats.GET("/:chat_id/messages", chatCtl.ListMessages)
		chats.POST("/:chat_id/messages", chatCtl.CreateMessage)
		chats.PUT("/messages/:message_id", chatCtl.UpdateMessage)
		chats.DELETE("/messages/:message_id", chatCtl.DeleteMessage)
	}

	return r
}
