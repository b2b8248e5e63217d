package models

import "time"

// Review is a client testimonial shown on the agent's site once approved
type Review struct {
	ID        string    `bson:"_id" json:"id"`
	AgentID   string    `bson:"agent_id" json:"agent_id"`
	Author    string    `bson:"author" json:"author"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved  bool      `bson:"approved" json:"approved"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReviewInput is the visitor-submitted review payload
type ReviewInput struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
