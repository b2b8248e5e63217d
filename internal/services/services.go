package services

import (
	"github.com/vitrineimob/vitrine-api/internal/config"
	"go.uber.org/zap"
)

// Global service instances, wired once at startup
var (
	AgentServiceInstance        *AgentService
	PropertyServiceInstance     *PropertyService
	LeadServiceInstance         *LeadService
	FeedServiceInstance         *FeedService
	BlogServiceInstance         *BlogService
	ReviewServiceInstance       *ReviewService
	SubscriptionServiceInstance *SubscriptionService
)

// Init initializes all global service instances
func Init() {
	logger := zap.L().Named("services")

	SubscriptionServiceInstance = NewSubscriptionService(config.MongoDB, zap.L().Named("subscription_service"))
	AgentServiceInstance = NewAgentService(config.MongoDB, zap.L().Named("agent_service"))
	PropertyServiceInstance = NewPropertyService(config.MongoDB, zap.L().Named("property_service"))
	LeadServiceInstance = NewLeadService(config.MongoDB, zap.L().Named("lead_service"))
	FeedServiceInstance = NewFeedService(config.MongoDB, config.Redis, zap.L().Named("feed_service"))
	BlogServiceInstance = NewBlogService(config.MongoDB, zap.L().Named("blog_service"))
	ReviewServiceInstance = NewReviewService(config.MongoDB, zap.L().Named("review_service"))

	logger.Info("services initialized successfully")
}
