package models

import "time"

// Booking statuses. A booking starts as created and moves to paid once
// verification succeeds; failed is reserved.
const (
	BookingCreated = "created"
	BookingPaid    = "paid"
	BookingFailed  = "failed"
)

type BookingContact struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
}

type Booking struct {
	ID        string          `bson:"_id" json:"id"`
	OrderID   string          `bson:"orderId" json:"orderId"`
	PaymentID string          `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Amount    int64           `bson:"amount" json:"amount"`
	Currency  string          `bson:"currency" json:"currency"`
	Status    string          `bson:"status" json:"status"`
	Mock      bool            `bson:"mock" json:"mock"`
	User      *BookingContact `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt" json:"updatedAt"`
}
