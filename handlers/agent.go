package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
)

type AgentController struct {
	catalog Catalog
}

func NewAgentController(catalog Catalog) *AgentController {
	return &AgentController{catalog: catalog}
}

func (ac *AgentController) ListAgents(c echo.Context) error {
	agents, err := ac.catalog.ListAgents(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch agents"})
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	return c.JSON(http.StatusOK, agents)
}

func (ac *AgentController) GetAgent(c echo.Context) error {
	ctx := c.Request().Context()
	agent, err := ac.catalog.GetAgent(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Agent not found"})
	}

	handled, err := ac.catalog.ListPropertiesByAgent(ctx, agent.ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Agent not found"})
	}
	if handled == nil {
		handled = []models.Property{}
	}

	return c.JSON(http.StatusOK, models.AgentDetail{Agent: *agent, HandledProperties: handled})
}
