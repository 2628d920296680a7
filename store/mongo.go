package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nagulan1506/real-estate-app/models"
)

// Mongo is the live document store.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo { return &Mongo{db: db} }

func (m *Mongo) properties() *mongo.Collection   { return m.db.Collection("properties") }
func (m *Mongo) agents() *mongo.Collection       { return m.db.Collection("agents") }
func (m *Mongo) users() *mongo.Collection        { return m.db.Collection("users") }
func (m *Mongo) inquiries() *mongo.Collection    { return m.db.Collection("inquiries") }
func (m *Mongo) appointments() *mongo.Collection { return m.db.Collection("appointments") }
func (m *Mongo) bookings() *mongo.Collection     { return m.db.Collection("bookings") }

func newID() string { return primitive.NewObjectID().Hex() }

func (m *Mongo) ListProperties(ctx context.Context, f Filter) ([]models.Property, error) {
	cursor, err := m.properties().Find(ctx, f.Query())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var list []models.Property
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *Mongo) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	err := m.properties().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) CreateProperty(ctx context.Context, p *models.Property) error {
	if p.ID == "" {
		p.ID = newID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := m.properties().InsertOne(ctx, p)
	return err
}

func (m *Mongo) UpdateProperty(ctx context.Context, id string, upd models.PropertyUpdate) (*models.Property, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Size != nil {
		set["size"] = *upd.Size
	}
	if upd.Rooms != nil {
		set["rooms"] = *upd.Rooms
	}
	if upd.Lat != nil {
		set["lat"] = *upd.Lat
	}
	if upd.Lng != nil {
		set["lng"] = *upd.Lng
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	after := options.After
	var p models.Property
	err := m.properties().FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) DeleteProperty(ctx context.Context, id string) error {
	res, err := m.properties().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ListAgents(ctx context.Context) ([]models.Agent, error) {
	cursor, err := m.agents().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var list []models.Agent
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *Mongo) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	var a models.Agent
	err := m.agents().FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (m *Mongo) ListPropertiesByAgent(ctx context.Context, agentID string) ([]models.Property, error) {
	cursor, err := m.properties().Find(ctx, bson.M{"agentId": agentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var list []models.Property
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *Mongo) CreateUser(ctx context.Context, u *models.User) error {
	count, err := m.users().CountDocuments(ctx, bson.M{"email": u.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	if u.ID == "" {
		u.ID = newID()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err = m.users().InsertOne(ctx, u)
	return err
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	res, err := m.users().UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expires,
		"updatedAt":            time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) ResetPassword(ctx context.Context, token, passwordHash string) error {
	res, err := m.users().UpdateOne(ctx,
		bson.M{
			"resetPasswordToken":   token,
			"resetPasswordExpires": bson.M{"$gt": time.Now()},
		},
		bson.M{
			"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()},
			"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) CreateInquiry(ctx context.Context, q *models.Inquiry) error {
	if q.ID == "" {
		q.ID = newID()
	}
	if q.Status == "" {
		q.Status = "pending"
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	_, err := m.inquiries().InsertOne(ctx, q)
	return err
}

func (m *Mongo) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := m.appointments().InsertOne(ctx, a)
	return err
}

func (m *Mongo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = newID()
	}
	if b.Currency == "" {
		b.Currency = "INR"
	}
	if b.Status == "" {
		b.Status = models.BookingCreated
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := m.bookings().InsertOne(ctx, b)
	return err
}

func (m *Mongo) UpsertBookingPaid(ctx context.Context, orderID, paymentID string, amount int64, mock bool) error {
	upsert := true
	_, err := m.bookings().UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{
			"$set": bson.M{
				"paymentId": paymentID,
				"status":    models.BookingPaid,
				"mock":      mock,
				"updatedAt": time.Now(),
			},
			"$setOnInsert": bson.M{
				"_id":       newID(),
				"amount":    amount,
				"currency":  "INR",
				"createdAt": time.Now(),
			},
		},
		&options.UpdateOptions{Upsert: &upsert},
	)
	return err
}

func (m *Mongo) Counts(ctx context.Context) (int64, int64, int64, error) {
	props, err := m.properties().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, err
	}
	agents, err := m.agents().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, err
	}
	users, err := m.users().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, err
	}
	return props, agents, users, nil
}
