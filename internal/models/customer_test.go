package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTag(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	tests := []struct {
		name     string
		customer Customer
		want     CustomerTag
	}{
		{
			name:     "banned_wins_over_everything",
			customer: Customer{IsBanned: true, OrderCount: 50, TotalSpend: 99999, LastOrderAt: daysAgo(1)},
			want:     TagBanned,
		},
		{
			name:     "no_orders_is_new",
			customer: Customer{},
			want:     TagNew,
		},
		{
			name:     "single_order_is_new",
			customer: Customer{OrderCount: 1, LastOrderAt: daysAgo(2)},
			want:     TagNew,
		},
		{
			name:     "stale_vip_is_inactive",
			customer: Customer{OrderCount: 20, TotalSpend: 50000, LastOrderAt: daysAgo(120)},
			want:     TagInactive,
		},
		{
			name:     "recent_gap_is_at_risk",
			customer: Customer{OrderCount: 5, LastOrderAt: daysAgo(45)},
			want:     TagAtRisk,
		},
		{
			name:     "order_count_makes_vip",
			customer: Customer{OrderCount: 10, LastOrderAt: daysAgo(3)},
			want:     TagVIP,
		},
		{
			name:     "spend_makes_vip",
			customer: Customer{OrderCount: 3, TotalSpend: 12000, LastOrderAt: daysAgo(3)},
			want:     TagVIP,
		},
		{
			name:     "otherwise_regular",
			customer: Customer{OrderCount: 4, TotalSpend: 900, LastOrderAt: daysAgo(10)},
			want:     TagRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTag(tt.customer, now))
		})
	}
}
