package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/payment"
)

type PaymentController struct {
	payments *payment.Service
}

func NewPaymentController(payments *payment.Service) *PaymentController {
	return &PaymentController{payments: payments}
}

func (pc *PaymentController) CreateOrder(c echo.Context) error {
	var req struct {
		Amount int64                  `json:"amount"`
		User   *models.BookingContact `json:"user"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Amount is required"})
	}

	order, err := pc.payments.CreateOrder(c.Request().Context(), req.Amount, req.User)
	if err != nil {
		c.Logger().Errorf("Razorpay Order Error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create order"})
	}
	return c.JSON(http.StatusOK, order)
}

func (pc *PaymentController) VerifyPayment(c echo.Context) error {
	var req struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.OrderID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	mock, err := pc.payments.VerifyPayment(c.Request().Context(), req.OrderID, req.PaymentID, req.Signature)
	switch {
	case err == payment.ErrInvalidSignature:
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": "Invalid signature", "success": false})
	case err == payment.ErrSecretMissing:
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Razorpay secret missing"})
	case err != nil:
		c.Logger().Errorf("payment verification failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to verify payment"})
	}

	if mock {
		return c.JSON(http.StatusOK, map[string]interface{}{"message": "Mock payment verified", "success": true})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Payment verified successfully", "success": true})
}
