package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanPropertyLimit(t *testing.T) {
	assert.Equal(t, 20, PlanPropertyLimit(PlanTrial))
	assert.Equal(t, 50, PlanPropertyLimit(PlanEssencial))
	assert.Equal(t, 200, PlanPropertyLimit(PlanProfissional))
}

func TestSubscription_CanPublish(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		sub         Subscription
		activeCount int
		want        bool
	}{
		{
			name:        "active under limit",
			sub:         Subscription{Status: SubActive, PropertyLimit: 50},
			activeCount: 49,
			want:        true,
		},
		{
			name:        "active at limit",
			sub:         Subscription{Status: SubActive, PropertyLimit: 50},
			activeCount: 50,
			want:        false,
		},
		{
			name:        "trial within period",
			sub:         Subscription{Status: SubTrialing, PropertyLimit: 20, PeriodEnd: now.Add(24 * time.Hour)},
			activeCount: 0,
			want:        true,
		},
		{
			name:        "trial expired",
			sub:         Subscription{Status: SubTrialing, PropertyLimit: 20, PeriodEnd: now.Add(-time.Hour)},
			activeCount: 0,
			want:        false,
		},
		{
			name:        "past due blocked",
			sub:         Subscription{Status: SubPastDue, PropertyLimit: 50},
			activeCount: 0,
			want:        false,
		},
		{
			name:        "canceled blocked",
			sub:         Subscription{Status: SubCanceled, PropertyLimit: 50},
			activeCount: 0,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.CanPublish(tt.activeCount, now))
		})
	}
}
