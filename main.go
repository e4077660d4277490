package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"lesmarvelous-backend/config"
	"lesmarvelous-backend/database"
	"lesmarvelous-backend/routes"
	"lesmarvelous-backend/utils"
)

func main() {
	cfg := config.Load()

	db := database.Init(cfg)

	r := gin.Default()
	r.Use(utils.CORSMiddleware(cfg.FrontendURL))

	routes.Setup(r, db, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
