package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ReviewService handles client testimonials
type ReviewService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(database *mongo.Database, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		database: database,
		logger:   logger,
	}
}

func (s *ReviewService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.ReviewCollection)
}

// Create stores a visitor-submitted review; it stays hidden until the agent
// approves it.
func (s *ReviewService) Create(ctx context.Context, agentID string, in *models.ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		AgentID:   agentID,
		Author:    in.Author,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.collection().InsertOne(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return review, nil
}

// ListByAgent returns reviews; approvedOnly restricts to the public set
func (s *ReviewService) ListByAgent(ctx context.Context, agentID string, approvedOnly bool) ([]models.Review, error) {
	filter := bson.M{"agent_id": agentID}
	if approvedOnly {
		filter["approved"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Approve makes a review visible on the public site
func (s *ReviewService) Approve(ctx context.Context, agentID, id string) error {
	result, err := s.collection().UpdateOne(ctx,
		bson.M{"_id": id, "agent_id": agentID},
		bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("failed to approve review: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, agentID, id string) error {
	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": id, "agent_id": agentID})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
