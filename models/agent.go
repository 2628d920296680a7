package models

import "time"

type Agent struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Bio       string    `bson:"bio" json:"bio"`
	AvatarURL string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AgentDetail is the by-id response shape: the agent plus every property
// they handle.
type AgentDetail struct {
	Agent             `bson:",inline"`
	HandledProperties []Property `json:"handledProperties"`
}
