package store

import (
	"context"
	"errors"
	"time"

	"github.com/nagulan1506/real-estate-app/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("duplicate")
	ErrUnavailable = errors.New("store unavailable")
)

type PropertyStore interface {
	ListProperties(ctx context.Context, f Filter) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, p *models.Property) error
	UpdateProperty(ctx context.Context, id string, upd models.PropertyUpdate) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

type AgentStore interface {
	ListAgents(ctx context.Context) ([]models.Agent, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	ListPropertiesByAgent(ctx context.Context, agentID string) ([]models.Property, error)
}

type UserStore interface {
	// CreateUser returns ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, email, token string, expires time.Time) error
	// ResetPassword consumes an unexpired token, replacing the hash and
	// clearing the token fields. ErrNotFound covers invalid and expired.
	ResetPassword(ctx context.Context, token, passwordHash string) error
}

type InquiryStore interface {
	CreateInquiry(ctx context.Context, q *models.Inquiry) error
	CreateAppointment(ctx context.Context, a *models.Appointment) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	// UpsertBookingPaid records a successful verification by orderId. The
	// booking may not exist yet (mock path); amount is only used on insert.
	UpsertBookingPaid(ctx context.Context, orderID, paymentID string, amount int64, mock bool) error
}

type StatsStore interface {
	Counts(ctx context.Context) (props, agents, users int64, err error)
}
