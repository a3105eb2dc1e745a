package domain

import (
	"testing"
	"time"
)

// The activity window is inclusive on both ends.
func TestCampaignRunning(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	c := Campaign{IsActive: true, StartDate: start, EndDate: end}

	tests := []struct {
		name string
		c    Campaign
		now  time.Time
		want bool
	}{
		{"inside window", c, start.AddDate(0, 0, 10), true},
		{"at start", c, start, true},
		{"at end", c, end, true},
		{"before start", c, start.Add(-time.Second), false},
		{"after end", c, end.Add(time.Second), false},
		{"inactive", Campaign{IsActive: false, StartDate: start, EndDate: end}, start.AddDate(0, 0, 10), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Running(tc.now); got != tc.want {
				t.Fatalf("Running(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
