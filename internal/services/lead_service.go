package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/leads"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// LeadService handles inbound contact messages
type LeadService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewLeadService creates a new lead service instance
func NewLeadService(database *mongo.Database, logger *zap.Logger) *LeadService {
	return &LeadService{
		database: database,
		logger:   logger,
	}
}

func (s *LeadService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.LeadCollection)
}

// Create persists a contact-form submission, classifying it on the way in
func (s *LeadService) Create(ctx context.Context, agentID string, in *models.LeadInput) (*models.Lead, error) {
	leadType := leads.DetectType(in.Message, in.Context)
	observability.LeadsClassified.WithLabelValues(string(leadType)).Inc()

	lead := &models.Lead{
		ID:         uuid.NewString(),
		AgentID:    agentID,
		PropertyID: in.PropertyID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Message:    in.Message,
		Type:       leadType,
		Status:     models.LeadStatusNew,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.collection().InsertOne(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID),
		zap.String("agent_id", agentID),
		zap.String("type", string(leadType)))
	return lead, nil
}

// ListByAgent returns the agent's leads, newest first, optionally by status
func (s *LeadService) ListByAgent(ctx context.Context, agentID string, status models.LeadStatus) ([]models.Lead, error) {
	filter := bson.M{"agent_id": agentID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find leads: %w", err)
	}
	defer cursor.Close(ctx)

	result := []models.Lead{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return result, nil
}

// UpdateStatus moves a lead through its dashboard lifecycle
func (s *LeadService) UpdateStatus(ctx context.Context, agentID, id string, status models.LeadStatus) error {
	result, err := s.collection().UpdateOne(ctx,
		bson.M{"_id": id, "agent_id": agentID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrLeadNotFound
	}
	return nil
}

// Delete removes a lead permanently
func (s *LeadService) Delete(ctx context.Context, agentID, id string) error {
	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": id, "agent_id": agentID})
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrLeadNotFound
	}
	return nil
}
