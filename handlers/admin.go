package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/store"
)

type AdminController struct {
	stats store.StatsStore
}

func NewAdminController(stats store.StatsStore) *AdminController {
	return &AdminController{stats: stats}
}

func (ac *AdminController) Summary(c echo.Context) error {
	props, agents, users, err := ac.stats.Counts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("admin summary failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch summary"})
	}
	return c.JSON(http.StatusOK, map[string]int64{
		"propCount":  props,
		"agentCount": agents,
		"userCount":  users,
	})
}

type HealthController struct {
	gate interface{ Available() bool }
}

func NewHealthController(gate interface{ Available() bool }) *HealthController {
	return &HealthController{gate: gate}
}

func (hc *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"dbConnected": hc.gate.Available(),
	})
}
