package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/libreshelf/library-backend/src/config"
	"github.com/libreshelf/library-backend/src/db"
	"github.com/libreshelf/library-backend/src/middleware"
	"github.com/libreshelf/library-backend/src/models"
	"github.com/libreshelf/library-backend/src/routes"
	"github.com/libreshelf/library-backend/src/seed"
	"github.com/libreshelf/library-backend/src/services"
	"github.com/robfig/cron/v3"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.BookModel{}, &models.LoanModel{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	cfg := config.Load()

	if cfg.SeedDB {
		seed.Seed(db)
	}

	// Services setup
	bookService := services.NewBookService(db)
	loanService := services.NewLoanService(db)
	emailService := services.NewEmailService(cfg)
	importService := services.NewCatalogImportService(bookService)
	sweeper := services.NewOverdueSweeper(loanService, emailService, cfg.OverdueLoanDays)

	// Overdue sweep schedule
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SweepCron, func() {
		if err := sweeper.Sweep(); err != nil {
			log.Printf("Overdue sweep failed: %v\n", err)
		}
	}); err != nil {
		log.Fatalf("Invalid sweep schedule %q: %v\n", cfg.SweepCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORSOrigins))
	router.Use(middleware.RequestID())

	// Routes setup
	routes.SetupBookRoutes(router, bookService, loanService, importService)
	routes.SetupLoanRoutes(router, loanService, bookService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Library API up")
	})

	// Server run
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.ServerHost, err)
	}

}
