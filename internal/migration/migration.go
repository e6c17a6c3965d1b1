// Package migration implements the week-by-week audience migration model:
// mode classification, a reachable-audience estimate, a three-scenario
// conversion timeline, strategy recommendation, and a fixed risk matrix.
//
// The number of people converting in week w of a migration is
//
//	converts(w) = round(reachable × baseRate(w) × frequencyMult × scenarioMult)
//
// with each scenario's cumulative total hard-capped at the reachable
// audience. The base-rate table front-loads conversion (20% in week one,
// tapering to 2%) because announcement pushes move the motivated followers
// first and the long tail trickles.
//
// Every function is pure and total over its documented input domain. Input
// validation belongs to callers (see models.MigrationInputs).
package migration

import (
	"fmt"
	"math"

	"github.com/sparkfolk/channelcast/internal/models"
)

const (
	// maxWeeks is the simulation horizon.
	maxWeeks = 24

	// fullModeMin is the smallest source audience worth a full migration
	// flow; below it the move is manual, at zero there is nothing to move.
	fullModeMin = 50

	// largeChannelMin marks channels big enough to need staged comms.
	largeChannelMin = 100000

	// gradualOverlapMin is the overlap at or above which a gradual move is
	// recommended over running both channels in parallel.
	gradualOverlapMin = 70.0

	// fullSwitchOverlapMin combines with a daily cadence to make a hard
	// cutover viable.
	fullSwitchOverlapMin = 80.0

	// parallelStretch scales the gradual timeline for the parallel strategy.
	parallelStretch = 1.8

	// fullSwitchMaxWeeks caps the full-switch timeline.
	fullSwitchMaxWeeks = 4

	// riskHorizonWeek is the week whose expected count anchors the rushing
	// risk copy.
	riskHorizonWeek = 12
)

// Scenario rate multipliers.
const (
	conservativeFactor = 0.7
	expectedFactor     = 1.0
	optimisticFactor   = 1.4
)

// weeklyBaseRates is the fraction of the reachable audience converting in
// each early week; after the table runs out the tail rate repeats. The table
// plus sixteen tail weeks sums to exactly 1.0 of the reachable audience.
var weeklyBaseRates = []float64{0.20, 0.12, 0.10, 0.08, 0.06, 0.05, 0.04, 0.03}

const tailWeeklyRate = 0.02

// DetectMode classifies how a move can be carried out from the source
// audience size alone: nothing to move, few enough to invite by hand, or a
// full migration flow. No hysteresis; the boundaries are exact.
func DetectMode(sourceSubscribers int) models.MigrationMode {
	switch {
	case sourceSubscribers <= 0:
		return models.ModeStartFresh
	case sourceSubscribers < fullModeMin:
		return models.ModeMigrateManually
	default:
		return models.ModeFull
	}
}

// ReachableAudience estimates how many of the source audience can follow the
// move at all: round(source × overlap/100).
func ReachableAudience(sourceSubscribers int, overlapPercent float64) int {
	return int(math.Round(float64(sourceSubscribers) * overlapPercent / 100))
}

// frequencyMultiplier scales conversion speed by posting cadence. Cadence
// affects how fast the reachable audience moves, never how many move in
// total. An unrecognized cadence degrades to the neutral multiplier.
func frequencyMultiplier(f models.PostFrequency) float64 {
	switch f {
	case models.FrequencyDaily:
		return 1.3
	case models.FrequencyTwoThreeWeek:
		return 1.0
	case models.FrequencyWeekly:
		return 0.7
	case models.FrequencyMonthly:
		return 0.4
	default:
		return 1.0
	}
}

// baseRateForWeek returns the conversion fraction for a 1-based week index,
// repeating the tail rate once the table runs out.
func baseRateForWeek(week int) float64 {
	if week <= len(weeklyBaseRates) {
		return weeklyBaseRates[week-1]
	}
	return tailWeeklyRate
}

// reachedShare reports whether cum has reached num/den of total. Integer
// arithmetic keeps exact boundary hits (e.g. 4250 of 8500 at one half) from
// depending on float rounding.
func reachedShare(cum, total, num, den int) bool {
	return cum*den >= total*num
}

// accumulate adds one week of conversions to a scenario's running total,
// capped at the reachable audience.
func accumulate(cum, reachable int, baseRate, freqMult, scenarioMult float64) int {
	converts := int(math.Round(float64(reachable) * baseRate * freqMult * scenarioMult))
	cum += converts
	if cum > reachable {
		cum = reachable
	}
	return cum
}

// ProjectTimeline simulates the migration week by week for up to 24 weeks,
// three scenarios in lockstep. The simulation stops early once the
// conservative scenario has reached 95% of the reachable audience, checked
// after the week is recorded so the crossing week is always included. The
// 50% and 90% milestone weeks track the expected scenario only and are nil
// when the simulated horizon never crosses them. A zero reachable audience
// yields a single degenerate week.
func ProjectTimeline(in models.MigrationInputs) models.MigrationTimeline {
	reachable := ReachableAudience(in.SourceSubscribers, in.OverlapPercent)
	freqMult := frequencyMultiplier(in.PostFrequency)

	var (
		weeks        []models.WeeklyPoint
		halfWeek     *int
		ninetyWeek   *int
		conservative int
		expected     int
		optimistic   int
	)

	for week := 1; week <= maxWeeks; week++ {
		base := baseRateForWeek(week)
		conservative = accumulate(conservative, reachable, base, freqMult, conservativeFactor)
		expected = accumulate(expected, reachable, base, freqMult, expectedFactor)
		optimistic = accumulate(optimistic, reachable, base, freqMult, optimisticFactor)

		weeks = append(weeks, models.WeeklyPoint{
			Week:         week,
			Conservative: conservative,
			Expected:     expected,
			Optimistic:   optimistic,
		})

		if halfWeek == nil && reachedShare(expected, reachable, 1, 2) {
			w := week
			halfWeek = &w
		}
		if ninetyWeek == nil && reachedShare(expected, reachable, 9, 10) {
			w := week
			ninetyWeek = &w
		}

		if reachedShare(conservative, reachable, 19, 20) {
			break
		}
	}

	return models.MigrationTimeline{
		Weeks:             weeks,
		Reachable:         reachable,
		HalfReachedWeek:   halfWeek,
		NinetyReachedWeek: ninetyWeek,
	}
}

// gradualWeeks is the working estimate for a gradual move: the week the
// expected scenario reaches 90% of the reachable audience, or the full
// simulated length when it never does.
func gradualWeeks(timeline models.MigrationTimeline) int {
	if timeline.NinetyReachedWeek != nil {
		return *timeline.NinetyReachedWeek
	}
	return len(timeline.Weeks)
}

// RecommendStrategy builds the three strategy cards and flags one as
// recommended: gradual when at least 70% of the audience is reachable,
// parallel otherwise. Overlap bands below 70 deliberately share the parallel
// recommendation. Timelines derive from the projected 90% week; parallel
// stretches it 1.8x and a full switch is capped at four weeks.
func RecommendStrategy(in models.MigrationInputs) models.StrategyResult {
	timeline := ProjectTimeline(in)
	gradual := gradualWeeks(timeline)
	parallel := int(math.Round(float64(gradual) * parallelStretch))
	fullSwitch := gradual
	if fullSwitch > fullSwitchMaxWeeks {
		fullSwitch = fullSwitchMaxWeeks
	}

	recommended := models.StrategyParallel
	if in.OverlapPercent >= gradualOverlapMin {
		recommended = models.StrategyGradual
	}

	cards := []models.StrategyCard{
		{
			ID:          models.StrategyGradual,
			Title:       "Gradual migration",
			Description: "Announce the new channel, cross-post everything for a few weeks, and retire the old channel only once the audience has moved.",
			Pros: []string{
				"Lowest audience loss",
				"Nobody is pressured to move at once",
				"The old channel stays up as a safety net",
			},
			Cons: []string{
				"Slowest option",
				"Double posting effort while both channels run",
			},
			TimelineWeeks: gradual,
		},
		{
			ID:          models.StrategyParallel,
			Title:       "Parallel presence",
			Description: "Keep both channels alive and let each platform's strengths decide where content lands.",
			Pros: []string{
				"Nobody is left behind",
				"Both audiences keep growing",
			},
			Cons: []string{
				"Permanent double workload",
				"Your brand splits across two homes",
			},
			TimelineWeeks: parallel,
		},
		{
			ID:          models.StrategyFullSwitch,
			Title:       "Full switch",
			Description: "Announce a hard cutover date, promote the move everywhere, and archive the old channel within a month.",
			Pros: []string{
				"Fastest path to a single home",
				"One clear story for the audience",
			},
			Cons: []string{
				"Highest audience loss",
				"No safety net if the new platform underperforms",
			},
			TimelineWeeks: fullSwitch,
		},
	}
	for i := range cards {
		cards[i].Recommended = cards[i].ID == recommended
	}

	return models.StrategyResult{
		Cards:            cards,
		RecommendedID:    recommended,
		IsLargeChannel:   in.SourceSubscribers >= largeChannelMin,
		FullSwitchViable: in.PostFrequency == models.FrequencyDaily && in.OverlapPercent >= fullSwitchOverlapMin,
	}
}

// AssessRisks returns the fixed waiting-vs-rushing risk matrix. The lists
// never branch; two entries interpolate the caller's numbers (the audience
// outside the overlap, and the expected conversion count at the given
// horizon), the rest are static advisories.
func AssessRisks(in models.MigrationInputs, expectedAtHorizon int) models.RiskMatrix {
	reachable := ReachableAudience(in.SourceSubscribers, in.OverlapPercent)
	outsideOverlap := in.SourceSubscribers - reachable
	if outsideOverlap < 0 {
		outsideOverlap = 0
	}

	return models.RiskMatrix{
		WaitingRisks: []models.Risk{
			{
				Title: "The overlap window closes",
				Content: fmt.Sprintf(
					"About %d of your subscribers are outside the reachable overlap today, and that gap usually widens as inactive subscribers churn.",
					outsideOverlap),
			},
			{
				Title:   "Single-platform exposure",
				Content: "An algorithm or policy change can cut a channel's reach overnight. Waiting keeps all of your audience behind one platform's rules.",
			},
			{
				Title:   "First movers take the niche",
				Content: "Competitors who migrate earlier capture the early adopters in your niche, and those followers rarely move twice.",
			},
		},
		RushingRisks: []models.Risk{
			{
				Title: "Rushing converts fewer, not more",
				Content: fmt.Sprintf(
					"A measured move converts roughly %d people by week %d. Compressing the timeline typically strands the slower half of your audience.",
					expectedAtHorizon, riskHorizonWeek),
			},
			{
				Title:   "Least active followers get stranded",
				Content: "A hard cutover with no overlap period loses the followers who only check in occasionally.",
			},
			{
				Title:   "A rushed move reads as instability",
				Content: "Audiences interpret a sudden platform jump as trouble. Rebuilding that trust takes longer than the weeks a rush saves.",
			},
		},
	}
}

// expectedAtRiskHorizon picks the expected cumulative count at the risk
// horizon week, or at the final simulated week when the timeline exited
// earlier.
func expectedAtRiskHorizon(timeline models.MigrationTimeline) int {
	if len(timeline.Weeks) == 0 {
		return 0
	}
	idx := riskHorizonWeek - 1
	if idx >= len(timeline.Weeks) {
		idx = len(timeline.Weeks) - 1
	}
	return timeline.Weeks[idx].Expected
}

// Plan composes the full migration plan for one input record: mode,
// reachable audience, timeline, strategy cards, and the risk matrix.
func Plan(in models.MigrationInputs) models.MigrationPlan {
	timeline := ProjectTimeline(in)

	return models.MigrationPlan{
		Mode:      DetectMode(in.SourceSubscribers),
		Reachable: timeline.Reachable,
		Timeline:  timeline,
		Strategy:  RecommendStrategy(in),
		Risks:     AssessRisks(in, expectedAtRiskHorizon(timeline)),
	}
}
