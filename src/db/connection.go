package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file, if one is present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	dsn := os.Getenv("DB_DSN")

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the services rely on for the
	// ISBN uniqueness guard.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Println("Error connecting to database:", err)
		return nil, err
	}

	log.Println("Library DB connected successfully!")

	return db, nil
}
