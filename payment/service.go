package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
)

// MockOrderPrefix marks locally synthesized orders. Verification trusts
// any order id carrying it; that is the documented demo shortcut.
const MockOrderPrefix = "order_mock_"

var (
	ErrInvalidAmount    = errors.New("amount is required")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrSecretMissing    = errors.New("gateway secret missing")
)

// Service runs the booking lifecycle: created -> paid, with created ->
// failed reserved. Orders come from the real gateway when credentials are
// configured, otherwise from the mock path.
type Service struct {
	Gateway Gateway

	keyID    string
	secret   string
	bookings store.BookingStore
}

func NewService(keyID, secret string, bookings store.BookingStore) *Service {
	s := &Service{keyID: keyID, secret: secret, bookings: bookings}
	if keyID != "" && secret != "" {
		s.Gateway = NewRazorpayClient(keyID, secret)
	} else if keyID != "" {
		log.Println("Razorpay Key ID present but Secret missing. Falling back to Mock Mode.")
	}
	return s
}

// CreateOrder makes a gateway order for the given whole-unit amount and
// records a Booking in created state, with the buyer contact when one was
// sent. Without credentials it synthesizes a mock order; a persistence
// failure then is logged, not surfaced, and the order is still returned.
func (s *Service) CreateOrder(ctx context.Context, amount int64, contact *models.BookingContact) (*Order, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if s.Gateway == nil {
		keyID := s.keyID
		if keyID == "" {
			keyID = "none"
		}
		order := &Order{
			ID:       fmt.Sprintf("%s%d", MockOrderPrefix, time.Now().UnixMilli()),
			Amount:   amount * 100,
			Currency: "INR",
			Status:   models.BookingCreated,
			Notes:    map[string]any{"mock": true},
			Mock:     true,
			KeyID:    keyID,
		}
		if err := s.bookings.CreateBooking(ctx, &models.Booking{
			OrderID:  order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Status:   models.BookingCreated,
			Mock:     true,
			User:     contact,
		}); err != nil {
			log.Printf("mock order booking not persisted: %v", err)
		}
		return order, nil
	}

	order, err := s.Gateway.CreateOrder(ctx, amount*100, "INR", "receipt_order_"+uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := s.bookings.CreateBooking(ctx, &models.Booking{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Status:   models.BookingCreated,
		User:     contact,
	}); err != nil {
		return nil, err
	}
	return order, nil
}

// VerifyPayment checks the completion signal and moves the booking to
// paid, reporting whether the mock path handled it. Mock orders skip the
// signature check entirely; real orders must carry
// HMAC-SHA256(secret, orderId+"|"+paymentId) in hex.
func (s *Service) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	if strings.HasPrefix(orderID, MockOrderPrefix) {
		log.Println("Verifying mock payment")
		if err := s.bookings.UpsertBookingPaid(ctx, orderID, paymentID, 50000, true); err != nil {
			log.Printf("mock payment booking not persisted: %v", err)
		}
		return true, nil
	}

	if s.secret == "" {
		return false, ErrSecretMissing
	}

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return false, ErrInvalidSignature
	}

	return false, s.bookings.UpsertBookingPaid(ctx, orderID, paymentID, 0, false)
}
