package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/config"
	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/router"
	"github.com/ardiente-ken/Lunchmates/services"
	"github.com/ardiente-ken/Lunchmates/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := cfg.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// One auto-closer for the process; it owns every pending close timer.
	closer := services.NewAutoCloser(db)
	defer closer.Stop()

	sweeper := services.NewRetentionSweeper(db, cfg.RetentionDays)
	sweeper.Start()
	defer sweeper.Stop()

	r := router.SetupRouter(db, closer)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.DailyMenu{},
		&models.Cutoff{},
		&models.OrderStatus{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
