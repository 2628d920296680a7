package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/ai"
)

type AIController struct {
	assistant *ai.Service
}

func NewAIController(assistant *ai.Service) *AIController {
	return &AIController{assistant: assistant}
}

func (ac *AIController) LocalityInsights(c echo.Context) error {
	var req struct {
		Location string `json:"location"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Location is required"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"insight": ac.assistant.Insight(c.Request().Context(), req.Location),
	})
}

func (ac *AIController) Chat(c echo.Context) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Message is required"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"reply": ac.assistant.Chat(c.Request().Context(), req.Message),
	})
}
