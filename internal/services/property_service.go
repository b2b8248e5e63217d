package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/search"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PropertyService handles listing business logic
type PropertyService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewPropertyService creates a new property service instance
func NewPropertyService(database *mongo.Database, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		database: database,
		logger:   logger,
	}
}

func (s *PropertyService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.PropertyCollection)
}

// Create inserts a new listing for the agent, enforcing the plan quota
func (s *PropertyService) Create(ctx context.Context, agentID string, p *models.Property) error {
	if p.Price < 0 {
		return models.ErrNegativePrice
	}

	activeCount, err := s.ActiveCount(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to count active listings: %w", err)
	}
	allowed, err := SubscriptionServiceInstance.CanPublish(ctx, agentID, int(activeCount))
	if err != nil {
		return fmt.Errorf("failed to check plan limit: %w", err)
	}
	if !allowed {
		return models.ErrPlanLimitReached
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.AgentID = agentID
	if p.Reference == "" {
		p.Reference = newReference(p.ID)
	}
	if p.Status == "" {
		p.Status = models.StatusAtivo
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.collection().InsertOne(ctx, p); err != nil {
		observability.DatabaseOperations.WithLabelValues("property_insert", "error").Inc()
		return fmt.Errorf("failed to insert property: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("property_insert", "success").Inc()

	s.invalidateFeeds(ctx, agentID)
	s.logger.Info("property created",
		zap.String("property_id", p.ID),
		zap.String("agent_id", agentID))
	return nil
}

// GetByID fetches a single listing scoped to its owning agent
func (s *PropertyService) GetByID(ctx context.Context, agentID, id string) (*models.Property, error) {
	var p models.Property
	err := s.collection().FindOne(ctx, bson.M{"_id": id, "agent_id": agentID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return &p, nil
}

// ListByAgent returns the agent's listings, optionally narrowed by status
func (s *PropertyService) ListByAgent(ctx context.Context, agentID string, status models.PropertyStatus) ([]models.Property, error) {
	filter := bson.M{"agent_id": agentID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}

// Update replaces the mutable fields of a listing
func (s *PropertyService) Update(ctx context.Context, agentID, id string, p *models.Property) error {
	if p.Price < 0 {
		return models.ErrNegativePrice
	}

	update := bson.M{"$set": bson.M{
		"title":        p.Title,
		"description":  p.Description,
		"price":        p.Price,
		"bedrooms":     p.Bedrooms,
		"bathrooms":    p.Bathrooms,
		"garage":       p.Garage,
		"built_area":   p.BuiltArea,
		"total_area":   p.TotalArea,
		"city":         p.City,
		"neighborhood": p.Neighborhood,
		"type":         p.Type,
		"operation":    p.Operation,
		"images":       p.Images,
		"portals":      p.Portals,
		"featured":     p.Featured,
		"updated_at":   time.Now().UTC(),
	}}

	result, err := s.collection().UpdateOne(ctx, bson.M{"_id": id, "agent_id": agentID}, update)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("property_update", "error").Inc()
		return fmt.Errorf("failed to update property: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrPropertyNotFound
	}
	observability.DatabaseOperations.WithLabelValues("property_update", "success").Inc()

	s.invalidateFeeds(ctx, agentID)
	return nil
}

// UpdateStatus transitions the listing lifecycle state. This is the only
// removal mechanism; sold and rented listings stay in the collection.
func (s *PropertyService) UpdateStatus(ctx context.Context, agentID, id string, status models.PropertyStatus) error {
	if !models.ValidPropertyStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	result, err := s.collection().UpdateOne(ctx, bson.M{"_id": id, "agent_id": agentID}, update)
	if err != nil {
		return fmt.Errorf("failed to update property status: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrPropertyNotFound
	}

	s.invalidateFeeds(ctx, agentID)
	return nil
}

// Search loads the agent's active listings and applies the filter engine
func (s *PropertyService) Search(ctx context.Context, agentID string, criteria search.Criteria) ([]models.Property, error) {
	properties, err := s.ListByAgent(ctx, agentID, models.StatusAtivo)
	if err != nil {
		return nil, err
	}
	return search.Filter(properties, criteria), nil
}

// ActiveCount counts the agent's active listings (plan quota input)
func (s *PropertyService) ActiveCount(ctx context.Context, agentID string) (int64, error) {
	return s.collection().CountDocuments(ctx, bson.M{"agent_id": agentID, "status": models.StatusAtivo})
}

// invalidateFeeds drops cached portal feeds after any listing mutation.
// Best effort: a stale feed is served until TTL if Redis is down.
func (s *PropertyService) invalidateFeeds(ctx context.Context, agentID string) {
	if FeedServiceInstance == nil {
		return
	}
	if err := FeedServiceInstance.InvalidateAgent(ctx, agentID); err != nil {
		s.logger.Warn("failed to invalidate feed cache",
			zap.String("agent_id", agentID),
			zap.Error(err))
	}
}

// newReference derives the short listing reference shown to clients
func newReference(id string) string {
	return "VIT-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
