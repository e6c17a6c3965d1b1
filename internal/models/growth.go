// Package models defines the plain records exchanged with the channelcast
// calculators: growth projections, migration plans, and their inputs.
//
// All types are flat, JSON-serializable value records with no hidden state.
// Input types carry Validate methods for the calling layer (HTTP handlers,
// bot commands, CLI); the calculators themselves treat out-of-range input as
// a violated precondition rather than re-checking it, so callers must gate
// user-entered values through Validate (or clamp them) before computing.
package models

import (
	"errors"
	"math"

	"github.com/sparkfolk/channelcast/internal/niche"
)

// GrowthInputs parameterizes a 12-month follower projection. Constructed
// fresh per calculation; it has no identity beyond its field values.
type GrowthInputs struct {
	Followers             int           `json:"followers"`
	PostsPerWeek          float64       `json:"posts_per_week"`
	EngagementRatePercent float64       `json:"engagement_rate_percent"`
	Niche                 niche.Profile `json:"niche"`
}

// Validate checks the documented input ranges: followers ≥ 0, posting
// frequency ≥ 0, engagement rate ≥ 0, all finite, and a usable niche profile.
func (in *GrowthInputs) Validate() error {
	if in.Followers < 0 {
		return errors.New("followers must not be negative")
	}
	if math.IsNaN(in.PostsPerWeek) || math.IsInf(in.PostsPerWeek, 0) || in.PostsPerWeek < 0 {
		return errors.New("posts per week must be a non-negative finite number")
	}
	if math.IsNaN(in.EngagementRatePercent) || math.IsInf(in.EngagementRatePercent, 0) || in.EngagementRatePercent < 0 {
		return errors.New("engagement rate must be a non-negative finite number")
	}
	if in.Niche.Capacity <= 0 {
		return errors.New("niche capacity must be positive")
	}
	if in.Niche.AvgEngagementPercent <= 0 {
		return errors.New("niche average engagement must be positive")
	}
	return nil
}

// ScenarioValues holds one follower count per projection scenario.
type ScenarioValues struct {
	Conservative int `json:"conservative"`
	Expected     int `json:"expected"`
	Optimistic   int `json:"optimistic"`
}

// MonthProjection is the projected follower count for one elapsed month
// (1..12) under each scenario. Within a scenario the counts never shrink
// month over month, and conservative ≤ expected ≤ optimistic always holds.
type MonthProjection struct {
	Month        int `json:"month"`
	Conservative int `json:"conservative"`
	Expected     int `json:"expected"`
	Optimistic   int `json:"optimistic"`
}

// GrowthProjections is the ordered 12-month projection plus the month-12
// values repeated as Summary for callers that only render the endline.
type GrowthProjections struct {
	Monthly []MonthProjection `json:"monthly"`
	Summary ScenarioValues    `json:"summary"`
}

// Milestone is a fixed follower target strictly above the starting count,
// with the first month each scenario crosses it (nil when not reached within
// the projection horizon) and the estimated monthly revenue at that size.
type Milestone struct {
	Target            int     `json:"target"`
	Label             string  `json:"label"`
	ConservativeMonth *int    `json:"conservative_month"`
	ExpectedMonth     *int    `json:"expected_month"`
	OptimisticMonth   *int    `json:"optimistic_month"`
	MonthlyRevenueUSD float64 `json:"monthly_revenue_usd"`
}

// BenchmarkResult places the channel against its niche and a global posting
// average. Percentile and Label come from two independent threshold ladders;
// the two ratio fields expose the raw comparison behind them.
type BenchmarkResult struct {
	Percentile        int     `json:"percentile"`
	Label             string  `json:"label"`
	EngagementVsNiche float64 `json:"engagement_vs_niche"`
	FrequencyVsNiche  float64 `json:"frequency_vs_niche"`
	CombinedScore     float64 `json:"combined_score"`
}

// TipPriority orders recommendation tips for display.
type TipPriority string

// Tip priorities, highest first.
const (
	TipPriorityHigh   TipPriority = "high"
	TipPriorityMedium TipPriority = "medium"
	TipPriorityLow    TipPriority = "low"
)

// Tip is one rule-generated piece of growth advice.
type Tip struct {
	Priority TipPriority `json:"priority"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
}

// GrowthReport bundles everything the growth calculator derives from one
// input record. StartFollowers is the count the projection actually ran from
// (it differs from the input when a zero-follower channel is seeded).
type GrowthReport struct {
	StartFollowers             int               `json:"start_followers"`
	Projections                GrowthProjections `json:"projections"`
	Milestones                 []Milestone       `json:"milestones"`
	Benchmark                  BenchmarkResult   `json:"benchmark"`
	Tips                       []Tip             `json:"tips"`
	CurrentMonthlyRevenueUSD   float64           `json:"current_monthly_revenue_usd"`
	ProjectedMonthlyRevenueUSD float64           `json:"projected_monthly_revenue_usd"`
}
