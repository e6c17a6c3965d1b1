package models

import (
	"errors"
	"fmt"
	"math"
)

// PostFrequency is the declared posting cadence on the source platform. The
// cadence scales how quickly the reachable audience follows a migration.
type PostFrequency string

// Supported posting cadences.
const (
	FrequencyDaily        PostFrequency = "daily"
	FrequencyTwoThreeWeek PostFrequency = "2-3x"
	FrequencyWeekly       PostFrequency = "weekly"
	FrequencyMonthly      PostFrequency = "monthly"
)

// ParsePostFrequency maps a user-entered cadence string to a PostFrequency.
// It accepts the canonical forms plus the spelled-out "2-3x-weekly" alias.
func ParsePostFrequency(s string) (PostFrequency, error) {
	switch s {
	case string(FrequencyDaily):
		return FrequencyDaily, nil
	case string(FrequencyTwoThreeWeek), "2-3x-weekly":
		return FrequencyTwoThreeWeek, nil
	case string(FrequencyWeekly):
		return FrequencyWeekly, nil
	case string(FrequencyMonthly):
		return FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("unknown post frequency %q", s)
	}
}

// Valid reports whether f is one of the supported cadences.
func (f PostFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyTwoThreeWeek, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// MigrationMode classifies how a channel move can be carried out, decided
// purely by the size of the source audience.
type MigrationMode string

// Migration modes, from empty channel to established one.
const (
	ModeStartFresh      MigrationMode = "start_fresh"
	ModeMigrateManually MigrationMode = "migrate_manually"
	ModeFull            MigrationMode = "full"
)

// MigrationInputs parameterizes a migration plan: the source audience size,
// the declared share of it reachable on the destination platform, and the
// source posting cadence.
type MigrationInputs struct {
	SourceSubscribers int           `json:"source_subscribers"`
	OverlapPercent    float64       `json:"overlap_percent"`
	PostFrequency     PostFrequency `json:"post_frequency"`
}

// Validate checks the documented input ranges: subscribers ≥ 0, overlap
// within [10, 100], and a recognized posting cadence.
func (in *MigrationInputs) Validate() error {
	if in.SourceSubscribers < 0 {
		return errors.New("source subscribers must not be negative")
	}
	if math.IsNaN(in.OverlapPercent) || math.IsInf(in.OverlapPercent, 0) {
		return errors.New("overlap percent must be a finite number")
	}
	if in.OverlapPercent < 10 || in.OverlapPercent > 100 {
		return errors.New("overlap percent must be between 10 and 100")
	}
	if !in.PostFrequency.Valid() {
		return fmt.Errorf("unknown post frequency %q", in.PostFrequency)
	}
	return nil
}

// WeeklyPoint is the cumulative migrated count after one elapsed week under
// each scenario. Counts never exceed the reachable audience and never shrink
// week over week.
type WeeklyPoint struct {
	Week         int `json:"week"`
	Conservative int `json:"conservative"`
	Expected     int `json:"expected"`
	Optimistic   int `json:"optimistic"`
}

// MigrationTimeline is the week-by-week migration curve. HalfReachedWeek and
// NinetyReachedWeek are the first weeks the expected scenario crosses 50% and
// 90% of the reachable audience; nil when the simulated horizon never gets
// there.
type MigrationTimeline struct {
	Weeks             []WeeklyPoint `json:"weeks"`
	Reachable         int           `json:"reachable"`
	HalfReachedWeek   *int          `json:"half_reached_week"`
	NinetyReachedWeek *int          `json:"ninety_reached_week"`
}

// Strategy identifiers for the three migration approaches.
const (
	StrategyGradual    = "gradual"
	StrategyParallel   = "parallel"
	StrategyFullSwitch = "full_switch"
)

// StrategyCard describes one migration approach with its trade-offs and an
// estimated duration in weeks.
type StrategyCard struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	TimelineWeeks int      `json:"timeline_weeks"`
	Recommended   bool     `json:"recommended"`
}

// StrategyResult holds all strategy cards plus the derived channel traits the
// recommendation was based on.
type StrategyResult struct {
	Cards            []StrategyCard `json:"cards"`
	RecommendedID    string         `json:"recommended_id"`
	IsLargeChannel   bool           `json:"is_large_channel"`
	FullSwitchViable bool           `json:"full_switch_viable"`
}

// Risk is one static warning shown alongside a migration plan.
type Risk struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RiskMatrix pairs the risks of waiting too long against the risks of
// rushing the move.
type RiskMatrix struct {
	WaitingRisks []Risk `json:"waiting_risks"`
	RushingRisks []Risk `json:"rushing_risks"`
}

// MigrationPlan bundles everything the migration calculator derives from one
// input record.
type MigrationPlan struct {
	Mode      MigrationMode     `json:"mode"`
	Reachable int               `json:"reachable"`
	Timeline  MigrationTimeline `json:"timeline"`
	Strategy  StrategyResult    `json:"strategy"`
	Risks     RiskMatrix        `json:"risks"`
}
