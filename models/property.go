package models

import "time"

// Property types accepted by the catalog.
var PropertyTypes = []string{"Apartment", "House", "Condo", "Villa", "Studio"}

type Property struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	Location    string    `bson:"location" json:"location"`
	Price       int64     `bson:"price" json:"price"`
	Size        int64     `bson:"size" json:"size"`
	Rooms       int       `bson:"rooms" json:"rooms"`
	Lat         float64   `bson:"lat" json:"lat"`
	Lng         float64   `bson:"lng" json:"lng"`
	Images      []string  `bson:"images" json:"images"`
	Description string    `bson:"description" json:"description"`
	AgentID     string    `bson:"agentId,omitempty" json:"agentId,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PropertyUpdate carries the PATCH body; nil fields are left untouched.
type PropertyUpdate struct {
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	Location    *string   `json:"location"`
	Price       *int64    `json:"price"`
	Size        *int64    `json:"size"`
	Rooms       *int      `json:"rooms"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	Images      *[]string `json:"images"`
	Description *string   `json:"description"`
}
