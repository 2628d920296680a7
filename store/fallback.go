package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nagulan1506/real-estate-app/models"
)

// Backend is everything the live store provides.
type Backend interface {
	PropertyStore
	AgentStore
	UserStore
	InquiryStore
	BookingStore
	StatsStore
}

// Fallback routes catalog reads to the live store and serves the demo
// catalog whenever the live store is unreachable, errors, or a list read
// comes back empty. Serving demo data for an empty-but-healthy store is
// intentional product behavior, not an error: callers cannot tell the two
// apart. Writes and account/booking reads require the live store.
type Fallback struct {
	live      Backend
	static    *Static
	available bool
}

func NewFallback(live Backend, static *Static, available bool) *Fallback {
	return &Fallback{live: live, static: static, available: available}
}

// Open connects to the configured store once at startup. A failure leaves
// the process permanently on demo data; there is no retry loop.
func Open(ctx context.Context, uri, dbName string) *Fallback {
	static := NewStatic()
	if uri == "" {
		log.Println("MONGODB_URI not set. Running with in-memory data.")
		return NewFallback(nil, static, false)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(connectCtx, readpref.Primary())
	}
	if err != nil {
		log.Printf("MongoDB connection failed. Falling back to in-memory data: %v", err)
		return NewFallback(nil, static, false)
	}

	log.Println("MongoDB connected")
	return NewFallback(NewMongo(client.Database(dbName)), static, true)
}

// Available reports whether the persistent store was reachable at startup.
func (f *Fallback) Available() bool { return f.available }

func (f *Fallback) ListProperties(ctx context.Context, filter Filter) ([]models.Property, error) {
	if !f.available {
		return f.static.ListProperties(ctx, filter)
	}
	list, err := f.live.ListProperties(ctx, filter)
	if err != nil {
		log.Printf("property query failed, serving demo catalog: %v", err)
		return f.static.ListProperties(ctx, filter)
	}
	if len(list) == 0 {
		log.Println("property query returned no documents, serving demo catalog")
		return f.static.ListProperties(ctx, filter)
	}
	return list, nil
}

func (f *Fallback) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	if !f.available {
		return f.static.GetProperty(ctx, id)
	}
	p, err := f.live.GetProperty(ctx, id)
	if err != nil && err != ErrNotFound {
		log.Printf("property lookup failed, trying demo catalog: %v", err)
		return f.static.GetProperty(ctx, id)
	}
	return p, err
}

func (f *Fallback) ListAgents(ctx context.Context) ([]models.Agent, error) {
	if !f.available {
		return f.static.ListAgents(ctx)
	}
	list, err := f.live.ListAgents(ctx)
	if err != nil {
		log.Printf("agent query failed, serving demo catalog: %v", err)
		return f.static.ListAgents(ctx)
	}
	if len(list) == 0 {
		log.Println("agent query returned no documents, serving demo catalog")
		return f.static.ListAgents(ctx)
	}
	return list, nil
}

func (f *Fallback) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	if !f.available {
		return f.static.GetAgent(ctx, id)
	}
	a, err := f.live.GetAgent(ctx, id)
	if err != nil && err != ErrNotFound {
		log.Printf("agent lookup failed, trying demo catalog: %v", err)
		return f.static.GetAgent(ctx, id)
	}
	return a, err
}

func (f *Fallback) ListPropertiesByAgent(ctx context.Context, agentID string) ([]models.Property, error) {
	if !f.available {
		return f.static.ListPropertiesByAgent(ctx, agentID)
	}
	list, err := f.live.ListPropertiesByAgent(ctx, agentID)
	if err != nil {
		log.Printf("agent property query failed, serving demo catalog: %v", err)
		return f.static.ListPropertiesByAgent(ctx, agentID)
	}
	return list, nil
}

func (f *Fallback) CreateProperty(ctx context.Context, p *models.Property) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.CreateProperty(ctx, p)
}

func (f *Fallback) UpdateProperty(ctx context.Context, id string, upd models.PropertyUpdate) (*models.Property, error) {
	if !f.available {
		return nil, ErrUnavailable
	}
	return f.live.UpdateProperty(ctx, id, upd)
}

func (f *Fallback) DeleteProperty(ctx context.Context, id string) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.DeleteProperty(ctx, id)
}

func (f *Fallback) CreateUser(ctx context.Context, u *models.User) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.CreateUser(ctx, u)
}

func (f *Fallback) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if !f.available {
		return nil, ErrUnavailable
	}
	return f.live.FindUserByEmail(ctx, email)
}

func (f *Fallback) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.SetResetToken(ctx, email, token, expires)
}

func (f *Fallback) ResetPassword(ctx context.Context, token, passwordHash string) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.ResetPassword(ctx, token, passwordHash)
}

func (f *Fallback) CreateInquiry(ctx context.Context, q *models.Inquiry) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.CreateInquiry(ctx, q)
}

func (f *Fallback) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.CreateAppointment(ctx, a)
}

func (f *Fallback) CreateBooking(ctx context.Context, b *models.Booking) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.CreateBooking(ctx, b)
}

func (f *Fallback) UpsertBookingPaid(ctx context.Context, orderID, paymentID string, amount int64, mock bool) error {
	if !f.available {
		return ErrUnavailable
	}
	return f.live.UpsertBookingPaid(ctx, orderID, paymentID, amount, mock)
}

func (f *Fallback) Counts(ctx context.Context) (int64, int64, int64, error) {
	if !f.available {
		return f.static.Counts(ctx)
	}
	return f.live.Counts(ctx)
}
