package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
	"github.com/nagulan1506/real-estate-app/utils"
)

// Catalog is what the property and agent controllers need from the store.
type Catalog interface {
	store.PropertyStore
	store.AgentStore
	Available() bool
}

type PropertyController struct {
	catalog Catalog
}

func NewPropertyController(catalog Catalog) *PropertyController {
	return &PropertyController{catalog: catalog}
}

func parseFilter(c echo.Context) store.Filter {
	f := store.Filter{
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	if v := c.QueryParam("rooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinRooms = &n
		}
	}
	return f
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter := parseFilter(c)
	ctx := c.Request().Context()

	// Cache only live-store reads; demo data is already in memory.
	var cacheKey string
	if pc.catalog.Available() {
		params := map[string]string{}
		for _, k := range []string{"location", "type", "minPrice", "maxPrice", "rooms"} {
			if v := c.QueryParam(k); v != "" {
				params[k] = v
			}
		}
		cacheKey = utils.GenerateQueryCacheKey("properties", params)
		var cached []models.Property
		if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
			return c.JSON(http.StatusOK, cached)
		}
	}

	list, err := pc.catalog.ListProperties(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch properties"})
	}
	if list == nil {
		list = []models.Property{}
	}

	if cacheKey != "" {
		if err := utils.SetCached(ctx, cacheKey, list, time.Minute); err != nil {
			c.Logger().Warnf("property cache write failed: %v", err)
		}
	}
	return c.JSON(http.StatusOK, list)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	p, err := pc.catalog.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	agentID, _ := c.Get("user_id").(string)

	var p models.Property
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if p.Title == "" || p.Type == "" || p.Location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}
	if !utils.IsValidPropertyType(p.Type) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property type"})
	}

	p.ID = ""
	p.AgentID = agentID
	if err := pc.catalog.CreateProperty(c.Request().Context(), &p); err != nil {
		c.Logger().Errorf("create property failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create property"})
	}
	return c.JSON(http.StatusCreated, p)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	var upd models.PropertyUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if upd.Type != nil && !utils.IsValidPropertyType(*upd.Type) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property type"})
	}

	p, err := pc.catalog.UpdateProperty(c.Request().Context(), c.Param("id"), upd)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		c.Logger().Errorf("update property failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update property"})
	}
	return c.JSON(http.StatusOK, p)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	err := pc.catalog.DeleteProperty(c.Request().Context(), c.Param("id"))
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		c.Logger().Errorf("delete property failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete property"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}
