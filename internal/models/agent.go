package models

import "time"

// Agent is a broker or agency tenant account. The slug is the public
// marketing-site path segment and must be unique across tenants.
type Agent struct {
	ID        string    `bson:"_id" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CRECI     string    `bson:"creci,omitempty" json:"creci,omitempty"`
	City      string    `bson:"city,omitempty" json:"city,omitempty"`
	About     string    `bson:"about,omitempty" json:"about,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AgentInput is the registration/update payload for an agent account
type AgentInput struct {
	Slug  string `json:"slug" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	CRECI string `json:"creci"`
	City  string `json:"city"`
	About string `json:"about"`
}
