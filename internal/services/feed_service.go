package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/portal"
	"github.com/vitrineimob/vitrine-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// feedBuilders maps the portal path segment to its generator and the bson
// field carrying the publish flag.
var feedBuilders = map[string]struct {
	build     func([]models.Property) string
	flagField string
}{
	"zap":         {portal.BuildZap, "portals.zap"},
	"imovelweb":   {portal.BuildImovelweb, "portals.imovelweb"},
	"casamineira": {portal.BuildCasaMineira, "portals.casamineira"},
	"chavesnamao": {portal.BuildChavesNaMao, "portals.chavesnamao"},
	"tecimob":     {portal.BuildTecimob, "portals.tecimob"},
}

// Portals lists the supported portal identifiers
func Portals() []string {
	return []string{"zap", "imovelweb", "casamineira", "chavesnamao", "tecimob"}
}

// FeedService builds and caches the per-portal XML export documents
type FeedService struct {
	database *mongo.Database
	cache    *redisclient.Client
	logger   *zap.Logger
}

// NewFeedService creates a new feed service instance
func NewFeedService(database *mongo.Database, cache *redisclient.Client, logger *zap.Logger) *FeedService {
	return &FeedService{
		database: database,
		cache:    cache,
		logger:   logger,
	}
}

// Build returns the XML feed for one portal and agent. propertyID, when
// non-empty, narrows the document to a single listing (single-listing
// documents bypass the cache).
func (s *FeedService) Build(ctx context.Context, portalName, agentID, propertyID string) (string, error) {
	builder, ok := feedBuilders[portalName]
	if !ok {
		return "", models.ErrUnknownPortal
	}

	cacheKey := fmt.Sprintf("feed:%s:%s", portalName, agentID)
	if propertyID == "" && s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			observability.CacheHits.WithLabelValues("feed_get").Inc()
			return cached, nil
		}
	}

	filter := bson.M{
		"agent_id":        agentID,
		"status":          models.StatusAtivo,
		builder.flagField: true,
	}
	if propertyID != "" {
		filter["_id"] = propertyID
	}

	cursor, err := s.database.Collection(config.AppConfig.PropertyCollection).Find(ctx, filter)
	if err != nil {
		observability.FeedBuilds.WithLabelValues(portalName, "error").Inc()
		return "", fmt.Errorf("failed to find feed properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		observability.FeedBuilds.WithLabelValues(portalName, "error").Inc()
		return "", fmt.Errorf("failed to decode feed properties: %w", err)
	}

	doc := builder.build(properties)
	observability.FeedBuilds.WithLabelValues(portalName, "success").Inc()

	if propertyID == "" && s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, doc, config.AppConfig.FeedCacheTTL).Err(); err != nil {
			// Best effort: the next request rebuilds
			s.logger.Warn("failed to cache feed document",
				zap.String("portal", portalName),
				zap.String("agent_id", agentID),
				zap.Error(err))
		}
	}

	s.logger.Debug("feed built",
		zap.String("portal", portalName),
		zap.String("agent_id", agentID),
		zap.Int("properties", len(properties)))
	return doc, nil
}

// InvalidateAgent drops every cached portal feed for the agent
func (s *FeedService) InvalidateAgent(ctx context.Context, agentID string) error {
	if s.cache == nil {
		return nil
	}

	keys := make([]string, 0, len(feedBuilders))
	for _, portalName := range Portals() {
		keys = append(keys, fmt.Sprintf("feed:%s:%s", portalName, agentID))
	}

	if err := s.cache.Del(ctx, keys...).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to delete feed cache keys: %w", err)
	}
	return nil
}
