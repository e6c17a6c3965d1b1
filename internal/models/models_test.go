package models

import (
	"math"
	"testing"

	"github.com/sparkfolk/channelcast/internal/niche"
)

func TestGrowthInputsValidate(t *testing.T) {
	tests := []struct {
		name    string
		inputs  GrowthInputs
		wantErr bool
	}{
		{
			name: "valid inputs",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          3,
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: false,
		},
		{
			name: "zero followers is allowed",
			inputs: GrowthInputs{
				Followers:             0,
				PostsPerWeek:          3,
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: false,
		},
		{
			name: "negative followers",
			inputs: GrowthInputs{
				Followers:             -1,
				PostsPerWeek:          3,
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "zero posts per week is allowed",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          0,
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: false,
		},
		{
			name: "negative posts per week",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          -0.5,
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "NaN posts per week",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          math.NaN(),
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "infinite posts per week",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          math.Inf(1),
				EngagementRatePercent: 8,
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "negative engagement rate",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          3,
				EngagementRatePercent: -1,
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "NaN engagement rate",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          3,
				EngagementRatePercent: math.NaN(),
				Niche:                 niche.Default(),
			},
			wantErr: true,
		},
		{
			name: "zero-capacity niche",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          3,
				EngagementRatePercent: 8,
				Niche:                 niche.Profile{ID: "broken", AvgEngagementPercent: 8},
			},
			wantErr: true,
		},
		{
			name: "zero-engagement niche",
			inputs: GrowthInputs{
				Followers:             1000,
				PostsPerWeek:          3,
				EngagementRatePercent: 8,
				Niche:                 niche.Profile{ID: "broken", Capacity: 100000},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("GrowthInputs.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMigrationInputsValidate(t *testing.T) {
	tests := []struct {
		name    string
		inputs  MigrationInputs
		wantErr bool
	}{
		{
			name: "valid inputs",
			inputs: MigrationInputs{
				SourceSubscribers: 10000,
				OverlapPercent:    85,
				PostFrequency:     FrequencyTwoThreeWeek,
			},
			wantErr: false,
		},
		{
			name: "zero subscribers is allowed",
			inputs: MigrationInputs{
				SourceSubscribers: 0,
				OverlapPercent:    50,
				PostFrequency:     FrequencyDaily,
			},
			wantErr: false,
		},
		{
			name: "negative subscribers",
			inputs: MigrationInputs{
				SourceSubscribers: -5,
				OverlapPercent:    50,
				PostFrequency:     FrequencyDaily,
			},
			wantErr: true,
		},
		{
			name: "overlap below floor",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    9.9,
				PostFrequency:     FrequencyWeekly,
			},
			wantErr: true,
		},
		{
			name: "overlap at floor",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    10,
				PostFrequency:     FrequencyWeekly,
			},
			wantErr: false,
		},
		{
			name: "overlap at ceiling",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    100,
				PostFrequency:     FrequencyMonthly,
			},
			wantErr: false,
		},
		{
			name: "overlap above ceiling",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    100.1,
				PostFrequency:     FrequencyMonthly,
			},
			wantErr: true,
		},
		{
			name: "NaN overlap",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    math.NaN(),
				PostFrequency:     FrequencyDaily,
			},
			wantErr: true,
		},
		{
			name: "unknown frequency",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    50,
				PostFrequency:     PostFrequency("hourly"),
			},
			wantErr: true,
		},
		{
			name: "empty frequency",
			inputs: MigrationInputs{
				SourceSubscribers: 1000,
				OverlapPercent:    50,
				PostFrequency:     "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("MigrationInputs.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePostFrequency(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    PostFrequency
		wantErr bool
	}{
		{name: "daily", raw: "daily", want: FrequencyDaily},
		{name: "canonical 2-3x", raw: "2-3x", want: FrequencyTwoThreeWeek},
		{name: "spelled-out alias", raw: "2-3x-weekly", want: FrequencyTwoThreeWeek},
		{name: "weekly", raw: "weekly", want: FrequencyWeekly},
		{name: "monthly", raw: "monthly", want: FrequencyMonthly},
		{name: "unknown cadence", raw: "hourly", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "case sensitive", raw: "Daily", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePostFrequency(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePostFrequency(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePostFrequency(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
