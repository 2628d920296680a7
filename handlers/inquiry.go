package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
)

type InquiryController struct {
	inquiries store.InquiryStore
}

func NewInquiryController(inquiries store.InquiryStore) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

type inquiryRequest struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
}

func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.PropertyID == "" || req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	inquiry := models.Inquiry{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
	}
	err := ic.inquiries.CreateInquiry(c.Request().Context(), &inquiry)
	if err == store.ErrUnavailable {
		// Demo mode: acknowledge without persisting.
		log.Printf("[Mock DB] Saved inquiry: %+v", req)
	} else if err != nil {
		c.Logger().Errorf("inquiry insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to save inquiry"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Inquiry received",
		"data":    req,
	})
}

type appointmentRequest struct {
	PropertyID string `json:"propertyId"`
	AgentID    string `json:"agentId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Datetime   string `json:"datetime"`
}

func (ic *InquiryController) CreateAppointment(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.PropertyID == "" || req.AgentID == "" || req.Name == "" || req.Email == "" || req.Datetime == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	appt := models.Appointment{
		PropertyID: req.PropertyID,
		AgentID:    req.AgentID,
		Name:       req.Name,
		Email:      req.Email,
		Datetime:   req.Datetime,
	}
	err := ic.inquiries.CreateAppointment(c.Request().Context(), &appt)
	if err == store.ErrUnavailable {
		log.Printf("[Mock DB] Saved appointment: %+v", req)
	} else if err != nil {
		c.Logger().Errorf("appointment insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to save appointment"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Appointment scheduled",
		"data":    req,
	})
}
