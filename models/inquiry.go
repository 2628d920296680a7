package models

import "time"

type Inquiry struct {
	ID         string    `bson:"_id" json:"id"`
	PropertyID string    `bson:"propertyId" json:"propertyId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Message    string    `bson:"message,omitempty" json:"message,omitempty"`
	Status     string    `bson:"status" json:"status"` // pending, responded
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Appointment struct {
	ID         string    `bson:"_id" json:"id"`
	PropertyID string    `bson:"propertyId" json:"propertyId"`
	AgentID    string    `bson:"agentId" json:"agentId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Datetime   string    `bson:"datetime" json:"datetime"`
	Status     string    `bson:"status" json:"status"` // scheduled
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
