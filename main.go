package main

import (
	"log"

	"github.com/vibely/vibely/config"
	"github.com/vibely/vibely/models"
	"github.com/vibely/vibely/routes"
	"github.com/vibely/vibely/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() {
		if utils.Logger != nil {
			_ = utils.Logger.Sync()
		}
	}()

	db := config.InitDatabase(
		&models.User{},
		&models.AdminAccount{},
		&models.Post{},
		&models.Comment{},
		&models.Reply{},
		&models.Like{},
		&models.Media{},
		&models.PostAttachment{},
		&models.Follow{},
		&models.Notification{},
		&models.Chat{},
		&models.Message{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("listening on :%s", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server exited: %v", err)
	}
}
