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

// SubscriptionService handles billing records. Payment processing itself
// happens at the external provider; this service only reflects its outcome.
type SubscriptionService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(database *mongo.Database, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		database: database,
		logger:   logger,
	}
}

func (s *SubscriptionService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.SubscriptionCollection)
}

// EnsureForAgent creates the trial subscription for a freshly registered
// agent; it is a no-op if one already exists.
func (s *SubscriptionService) EnsureForAgent(ctx context.Context, agentID string) (*models.Subscription, error) {
	existing, err := s.Get(ctx, agentID)
	if err == nil {
		return existing, nil
	}
	if err != models.ErrSubscriptionNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &models.Subscription{
		ID:            uuid.NewString(),
		AgentID:       agentID,
		Plan:          models.PlanTrial,
		Status:        models.SubTrialing,
		PropertyLimit: models.PlanPropertyLimit(models.PlanTrial),
		PeriodEnd:     now.Add(config.AppConfig.TrialPeriod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.collection().InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return s.Get(ctx, agentID)
		}
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	s.logger.Info("trial subscription created",
		zap.String("agent_id", agentID),
		zap.Time("period_end", sub.PeriodEnd))
	return sub, nil
}

// Get fetches the agent's subscription
func (s *SubscriptionService) Get(ctx context.Context, agentID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.collection().FindOne(ctx, bson.M{"agent_id": agentID}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &sub, nil
}

// Update applies a plan/status change reported by the payment provider
func (s *SubscriptionService) Update(ctx context.Context, agentID string, plan models.Plan, status models.SubscriptionStatus, periodEnd time.Time) error {
	update := bson.M{"$set": bson.M{
		"plan":           plan,
		"status":         status,
		"property_limit": models.PlanPropertyLimit(plan),
		"period_end":     periodEnd,
		"updated_at":     time.Now().UTC(),
	}}

	result, err := s.collection().UpdateOne(ctx, bson.M{"agent_id": agentID}, update)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrSubscriptionNotFound
	}

	s.logger.Info("subscription updated",
		zap.String("agent_id", agentID),
		zap.String("plan", string(plan)),
		zap.String("status", string(status)))
	return nil
}

// CanPublish reports whether the agent may activate one more listing
func (s *SubscriptionService) CanPublish(ctx context.Context, agentID string, activeCount int) (bool, error) {
	sub, err := s.Get(ctx, agentID)
	if err != nil {
		return false, err
	}
	return sub.CanPublish(activeCount, time.Now().UTC()), nil
}
