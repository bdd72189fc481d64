package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/warriorfdkl/kalogram/models"
)

var DB *gorm.DB

// Load reads .env if present. A missing file is fine in deployments where
// the environment is injected directly.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.StoredBlob{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	DB = db
}

// Port the HTTP server listens on. Defaults to the relay's historical port.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3001"
}

func TelegramBotToken() string {
	return os.Getenv("TELEGRAM_BOT_TOKEN")
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
