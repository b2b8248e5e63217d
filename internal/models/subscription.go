package models

import "time"

// Plan enumerates the billing tiers
type Plan string

const (
	PlanTrial        Plan = "trial"
	PlanEssencial    Plan = "essencial"
	PlanProfissional Plan = "profissional"
)

// SubscriptionStatus mirrors what the external payment provider reports;
// the provider's state machine itself is not modeled here.
type SubscriptionStatus string

const (
	SubTrialing SubscriptionStatus = "trialing"
	SubActive   SubscriptionStatus = "active"
	SubPastDue  SubscriptionStatus = "past_due"
	SubCanceled SubscriptionStatus = "canceled"
)

// Subscription is the billing record for an agent account
type Subscription struct {
	ID            string             `bson:"_id" json:"id"`
	AgentID       string             `bson:"agent_id" json:"agent_id"`
	Plan          Plan               `bson:"plan" json:"plan"`
	Status        SubscriptionStatus `bson:"status" json:"status"`
	PropertyLimit int                `bson:"property_limit" json:"property_limit"`
	PeriodEnd     time.Time          `bson:"period_end" json:"period_end"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// PlanPropertyLimit returns the listing quota for a plan
func PlanPropertyLimit(p Plan) int {
	switch p {
	case PlanEssencial:
		return 50
	case PlanProfissional:
		return 200
	default:
		return 20
	}
}

// CanPublish reports whether the subscription allows one more active listing
// given the current active count.
func (s *Subscription) CanPublish(activeCount int, now time.Time) bool {
	if s.Status == SubCanceled || s.Status == SubPastDue {
		return false
	}
	if s.Status == SubTrialing && now.After(s.PeriodEnd) {
		return false
	}
	return activeCount < s.PropertyLimit
}
