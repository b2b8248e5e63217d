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
	"go.uber.org/zap"
)

// AgentService handles tenant accounts
type AgentService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewAgentService creates a new agent service instance
func NewAgentService(database *mongo.Database, logger *zap.Logger) *AgentService {
	return &AgentService{
		database: database,
		logger:   logger,
	}
}

func (s *AgentService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.AgentCollection)
}

// Register creates a new agent account plus its trial subscription
func (s *AgentService) Register(ctx context.Context, in *models.AgentInput) (*models.Agent, error) {
	now := time.Now().UTC()
	agent := &models.Agent{
		ID:        uuid.NewString(),
		Slug:      in.Slug,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CRECI:     in.CRECI,
		City:      in.City,
		About:     in.About,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.collection().InsertOne(ctx, agent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	if _, err := SubscriptionServiceInstance.EnsureForAgent(ctx, agent.ID); err != nil {
		// Account exists; the trial record can be recreated on first use
		s.logger.Error("failed to create trial subscription",
			zap.String("agent_id", agent.ID),
			zap.Error(err))
	}

	s.logger.Info("agent registered",
		zap.String("agent_id", agent.ID),
		zap.String("slug", agent.Slug))
	return agent, nil
}

// GetBySlug fetches an active agent by its public site slug
func (s *AgentService) GetBySlug(ctx context.Context, slug string) (*models.Agent, error) {
	var agent models.Agent
	err := s.collection().FindOne(ctx, bson.M{"slug": slug, "active": true}).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrAgentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return &agent, nil
}

// GetByID fetches an agent account by id
func (s *AgentService) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	var agent models.Agent
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrAgentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return &agent, nil
}

// Update changes the agent's profile fields
func (s *AgentService) Update(ctx context.Context, id string, in *models.AgentInput) error {
	update := bson.M{"$set": bson.M{
		"name":       in.Name,
		"phone":      in.Phone,
		"creci":      in.CRECI,
		"city":       in.City,
		"about":      in.About,
		"updated_at": time.Now().UTC(),
	}}

	result, err := s.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update agent: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrAgentNotFound
	}
	return nil
}
