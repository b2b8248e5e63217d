package config

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitrineimob/vitrine-api/internal/logging"
	"github.com/vitrineimob/vitrine-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Ping the database
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	// Ensure indexes exist and start maintenance routine
	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}
	startIndexMaintenance()

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Wrap with traced client
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI masks sensitive information in MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at == -1 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// indexSpec describes a single index required on a collection
type indexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
}

// ensureIndexes creates required indexes if they don't exist
func ensureIndexes() error {
	logger := zap.L().Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	required := map[string][]indexSpec{
		AppConfig.AgentCollection: {
			{Name: "slug_1", Keys: bson.D{{Key: "slug", Value: 1}}, Unique: true},
			{Name: "email_1", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
		},
		AppConfig.PropertyCollection: {
			{Name: "agent_id_1", Keys: bson.D{{Key: "agent_id", Value: 1}}},
			{Name: "agent_id_1_status_1", Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "status", Value: 1}}},
			{Name: "city_1", Keys: bson.D{{Key: "city", Value: 1}}},
		},
		AppConfig.LeadCollection: {
			{Name: "agent_id_1_created_at_-1", Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Name: "agent_id_1_status_1", Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		AppConfig.BlogPostCollection: {
			{Name: "agent_id_1_slug_1", Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "slug", Value: 1}}, Unique: true},
		},
		AppConfig.ReviewCollection: {
			{Name: "agent_id_1", Keys: bson.D{{Key: "agent_id", Value: 1}}},
		},
		AppConfig.SubscriptionCollection: {
			{Name: "agent_id_1", Keys: bson.D{{Key: "agent_id", Value: 1}}, Unique: true},
		},
	}

	for collection, specs := range required {
		if err := ensureCollectionIndexes(ctx, logger, collection, specs); err != nil {
			return err
		}
	}

	logger.Info("all required indexes verified")
	return nil
}

// ensureCollectionIndexes creates the missing indexes for a single collection
func ensureCollectionIndexes(ctx context.Context, logger *zap.Logger, collectionName string, specs []indexSpec) error {
	collection := MongoDB.Collection(collectionName)

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", collectionName), zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	created := 0
	for _, spec := range specs {
		if existing[spec.Name] {
			continue
		}

		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts = opts.SetUnique(true)
		}

		_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: opts})
		if err != nil {
			// Another instance may have created it between the list and the create
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("index already exists (created by another instance)",
					zap.String("collection", collectionName),
					zap.String("index", spec.Name))
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", collectionName),
				zap.String("index", spec.Name),
				zap.Error(err))
			return err
		}
		created++
	}

	if created > 0 {
		logger.Info("created collection indexes",
			zap.String("collection", collectionName),
			zap.Int("count", created))
	} else {
		logger.Debug("collection indexes already exist",
			zap.String("collection", collectionName))
	}

	return nil
}

// startIndexMaintenance starts a goroutine that periodically ensures indexes exist
func startIndexMaintenance() {
	logger := zap.L().Named("database")

	go func() {
		ticker := time.NewTicker(AppConfig.IndexMaintenanceInterval)
		defer ticker.Stop()

		for range ticker.C {
			if err := ensureIndexes(); err != nil {
				logger.Error("periodic index check failed", zap.Error(err))
			}
		}
	}()

	logger.Info("started index maintenance routine",
		zap.Duration("interval", AppConfig.IndexMaintenanceInterval))
}
