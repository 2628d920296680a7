package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Persistent store. Empty URI means run on demo data only.
	MongoURI      string `envconfig:"MONGODB_URI"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"realestate"`

	// Payment gateway. Both keys present enables real orders.
	RazorpayKeyID     string `envconfig:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `envconfig:"RAZORPAY_KEY_SECRET"`

	// Generative backend for locality insights and chat.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// Response cache
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Outbound mail for password resets.
	EmailUser string `envconfig:"EMAIL_USER"`
	EmailPass string `envconfig:"EMAIL_PASS"`
	SMTPAddr  string `envconfig:"SMTP_ADDR" default:"smtp.gmail.com:587"`

	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
