package models

import "time"

// BlogPost is an article published on an agent's marketing site
type BlogPost struct {
	ID         string    `bson:"_id" json:"id"`
	AgentID    string    `bson:"agent_id" json:"agent_id"`
	Title      string    `bson:"title" json:"title"`
	Slug       string    `bson:"slug" json:"slug"`
	Body       string    `bson:"body" json:"body"`
	CoverImage string    `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Published  bool      `bson:"published" json:"published"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogPostInput is the create/update payload for a blog post
type BlogPostInput struct {
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}
