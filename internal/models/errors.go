package models

import "errors"

// Error constants for domain operations
var (
	ErrPropertyNotFound     = errors.New("property not found")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrAgentNotFound        = errors.New("agent not found")
	ErrBlogPostNotFound     = errors.New("blog post not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSlugTaken            = errors.New("slug already in use")
	ErrPlanLimitReached     = errors.New("active listing limit reached for current plan")
	ErrUnknownPortal        = errors.New("unknown portal")
	ErrNegativePrice        = errors.New("price must be non-negative")
)
