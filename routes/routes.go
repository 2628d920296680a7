package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/ai"
	"github.com/nagulan1506/real-estate-app/handlers"
	"github.com/nagulan1506/real-estate-app/middleware"
	"github.com/nagulan1506/real-estate-app/payment"
	"github.com/nagulan1506/real-estate-app/store"
	"github.com/nagulan1506/real-estate-app/utils"
)

func RegisterRoutes(e *echo.Echo, catalog *store.Fallback, payments *payment.Service, assistant *ai.Service, mailer *utils.Mailer, frontendURL string) {
	properties := handlers.NewPropertyController(catalog)
	agents := handlers.NewAgentController(catalog)
	inquiries := handlers.NewInquiryController(catalog)
	auth := handlers.NewAuthController(catalog, mailer, frontendURL)
	pay := handlers.NewPaymentController(payments)
	assist := handlers.NewAIController(assistant)
	admin := handlers.NewAdminController(catalog)
	health := handlers.NewHealthController(catalog)

	agentOnly := middleware.JWTMiddleware("agent")
	adminOnly := middleware.JWTMiddleware("admin")

	api := e.Group("/api")

	api.GET("/properties", properties.ListProperties)
	api.GET("/properties/:id", properties.GetProperty)
	api.POST("/properties", properties.CreateProperty, agentOnly)
	api.PATCH("/properties/:id", properties.UpdateProperty, agentOnly)
	api.DELETE("/properties/:id", properties.DeleteProperty, agentOnly)

	api.GET("/agents", agents.ListAgents)
	api.GET("/agents/:id", agents.GetAgent)

	api.POST("/inquiries", inquiries.CreateInquiry)
	api.POST("/appointments", inquiries.CreateAppointment)

	api.POST("/locality-insights", assist.LocalityInsights)
	api.POST("/chat", assist.Chat)

	api.POST("/payment/order", pay.CreateOrder)
	api.POST("/payment/verify", pay.VerifyPayment)

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/forgot-password", auth.ForgotPassword)
	api.POST("/auth/reset-password", auth.ResetPassword)

	api.GET("/admin/summary", admin.Summary, adminOnly)

	api.GET("/health", health.Health)
}
