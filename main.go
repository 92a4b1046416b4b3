package main

import (
	"github.com/snapwall/snapwall/config"
	"github.com/snapwall/snapwall/models"
	"github.com/snapwall/snapwall/routes"
	"github.com/snapwall/snapwall/storage"
	"github.com/snapwall/snapwall/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Post{})

	utils.InitRedis(cfg)

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		utils.Sugar.Fatalf("blob store init failed: %v", err)
	}

	r := routes.SetupRouter(cfg, db, store)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
