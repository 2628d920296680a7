package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nagulan1506/real-estate-app/ai"
	"github.com/nagulan1506/real-estate-app/config"
	"github.com/nagulan1506/real-estate-app/payment"
	"github.com/nagulan1506/real-estate-app/routes"
	"github.com/nagulan1506/real-estate-app/store"
	"github.com/nagulan1506/real-estate-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := store.Open(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err := catalog.Seed(context.Background()); err != nil {
		log.Printf("seeding failed: %v", err)
	}

	utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword)

	payments := payment.NewService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, catalog)
	assistant := ai.NewService(cfg.GeminiAPIKey, catalog)
	mailer := utils.NewMailer(cfg.EmailUser, cfg.EmailPass, cfg.SMTPAddr)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, catalog, payments, assistant, mailer, cfg.FrontendURL)

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
