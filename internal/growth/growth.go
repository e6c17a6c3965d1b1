// Package growth implements the twelve-month follower projection model:
// a saturating growth simulation with three scenarios, milestone detection,
// monetization estimates, percentile benchmarking, and rule-based tips.
//
// The monthly growth rate is a dampened product of four factors:
//
//	rate = 0.05 × min(engagement/nicheAvg, 2.5) × min(0.5 + posts/10, 1.5) × cap/(cap+followers)
//
// The capacity term shrinks toward zero as the channel approaches its niche
// ceiling, so projections flatten instead of compounding forever.
//
// Every function in this package is pure and total over its documented input
// domain. Input validation belongs to callers (see models.GrowthInputs);
// out-of-range input produces degenerate but finite output, never a panic.
package growth

import (
	"fmt"
	"math"

	"github.com/sparkfolk/channelcast/internal/models"
	"github.com/sparkfolk/channelcast/internal/niche"
)

const (
	// baseMonthlyRate is the monthly growth a channel earns at exactly
	// niche-average engagement and neutral posting cadence, before dampening.
	baseMonthlyRate = 0.05

	// engagementCap bounds the engagement multiplier. Claimed engagement
	// beyond 2.5× the niche average earns no further rate.
	engagementCap = 2.5

	// frequencyFloor and frequencyCap bound the posting-cadence multiplier.
	// Zero posts still yields 0.5; more than ten per week yields no more
	// than 1.5.
	frequencyFloor = 0.5
	frequencyCap   = 1.5

	// zeroFollowerSeed replaces a zero starting count so the simulation has
	// something to compound from.
	zeroFollowerSeed = 50

	// horizonMonths is the projection length.
	horizonMonths = 12

	// creatorRevenueShare is the fraction of subscription revenue left after
	// the platform's 10% cut.
	creatorRevenueShare = 0.9

	// globalAvgPostsPerWeek anchors the frequency benchmark. It is a global
	// assumption, independent of niche.
	globalAvgPostsPerWeek = 5.0

	// maxTips bounds the recommendation list.
	maxTips = 4
)

// Scenario rate multipliers. Applied to the effective monthly rate before
// growth, so the three trajectories diverge increasingly over time.
const (
	conservativeFactor = 0.6
	expectedFactor     = 1.0
	optimisticFactor   = 1.5
)

// EffectiveMonthlyRate computes the dampened monthly growth rate for a
// channel of the given size.
//
//	rate = 0.05 × min(engagementRate/avgEngagement, 2.5)
//	            × min(0.5 + postsPerWeek/10, 1.5)
//	            × capacity/(capacity + followers)
//
// The capacity term is in (0, 1] for any non-negative follower count because
// every niche profile carries a positive capacity, so the result is never
// negative or non-finite for non-negative finite input.
func EffectiveMonthlyRate(followers int, engagementRate, postsPerWeek float64, n niche.Profile) float64 {
	engagement := math.Min(engagementRate/n.AvgEngagementPercent, engagementCap)
	frequency := math.Min(frequencyFloor+postsPerWeek/10, frequencyCap)
	capacity := float64(n.Capacity)
	dampening := capacity / (capacity + float64(followers))
	return baseMonthlyRate * engagement * frequency * dampening
}

// seededStart returns the count a projection runs from: the input count, or
// the fixed seed when the channel is empty.
func seededStart(followers int) int {
	if followers == 0 {
		return zeroFollowerSeed
	}
	return followers
}

// advance applies one month of growth to a single scenario's running count.
// The rate is recomputed from that scenario's own count so dampening tracks
// its own trajectory; rounding happens once, after growth.
func advance(count int, scenarioFactor float64, in models.GrowthInputs) int {
	rate := EffectiveMonthlyRate(count, in.EngagementRatePercent, in.PostsPerWeek, in.Niche)
	return int(math.Round(float64(count) * (1 + rate*scenarioFactor)))
}

// Project simulates the follower count forward twelve months under
// conservative, expected, and optimistic scenarios. All three start from the
// same (seeded) count and advance in lockstep, each recomputing its rate from
// its own running total every month. Summary repeats the month-12 values.
func Project(in models.GrowthInputs) models.GrowthProjections {
	start := seededStart(in.Followers)

	conservative, expected, optimistic := start, start, start
	monthly := make([]models.MonthProjection, 0, horizonMonths)

	for month := 1; month <= horizonMonths; month++ {
		conservative = advance(conservative, conservativeFactor, in)
		expected = advance(expected, expectedFactor, in)
		optimistic = advance(optimistic, optimisticFactor, in)

		monthly = append(monthly, models.MonthProjection{
			Month:        month,
			Conservative: conservative,
			Expected:     expected,
			Optimistic:   optimistic,
		})
	}

	return models.GrowthProjections{
		Monthly: monthly,
		Summary: models.ScenarioValues{
			Conservative: conservative,
			Expected:     expected,
			Optimistic:   optimistic,
		},
	}
}

// milestoneTargets are the fixed follower thresholds reports anchor to.
var milestoneTargets = []struct {
	target int
	label  string
}{
	{10_000, "10K"},
	{50_000, "50K"},
	{100_000, "100K"},
	{500_000, "500K"},
	{1_000_000, "1M"},
}

// crossingMonths returns the first month each scenario's count reaches the
// target, or nil for scenarios that never get there within the projection.
func crossingMonths(monthly []models.MonthProjection, target int) (conservative, expected, optimistic *int) {
	for _, mp := range monthly {
		if conservative == nil && mp.Conservative >= target {
			m := mp.Month
			conservative = &m
		}
		if expected == nil && mp.Expected >= target {
			m := mp.Month
			expected = &m
		}
		if optimistic == nil && mp.Optimistic >= target {
			m := mp.Month
			optimistic = &m
		}
	}
	return conservative, expected, optimistic
}

// Milestones returns, for every fixed target strictly above the (seeded)
// starting count, the first month each scenario crosses it and the estimated
// monthly revenue at that size. Targets at or below the start are dropped.
func Milestones(in models.GrowthInputs, proj models.GrowthProjections) []models.Milestone {
	start := seededStart(in.Followers)

	milestones := make([]models.Milestone, 0, len(milestoneTargets))
	for _, mt := range milestoneTargets {
		if mt.target <= start {
			continue
		}
		c, e, o := crossingMonths(proj.Monthly, mt.target)
		milestones = append(milestones, models.Milestone{
			Target:            mt.target,
			Label:             mt.label,
			ConservativeMonth: c,
			ExpectedMonth:     e,
			OptimisticMonth:   o,
			MonthlyRevenueUSD: Monetization(mt.target, in.Niche),
		})
	}
	return milestones
}

// Monetization estimates monthly subscription revenue in USD for a channel
// of the given size: paying subscribers at the niche conversion rate, priced
// at the niche average, minus the platform cut.
//
//	revenue = followers × conversion%/100 × price × 0.9
func Monetization(followers int, n niche.Profile) float64 {
	return float64(followers) * (n.ConversionRatePercent / 100) * n.AvgSubscriptionPriceUSD * creatorRevenueShare
}

// Benchmark places the channel against its niche's average engagement and a
// fixed global posting average. The combined score blends the two ratios
// 60/40 in favor of engagement; the percentile comes from a threshold ladder
// over the score and the label from a second ladder over the percentile.
func Benchmark(in models.GrowthInputs) models.BenchmarkResult {
	engagementVs := in.EngagementRatePercent / in.Niche.AvgEngagementPercent
	frequencyVs := in.PostsPerWeek / globalAvgPostsPerWeek
	combined := 0.6*engagementVs + 0.4*frequencyVs

	percentile := percentileForScore(combined)
	return models.BenchmarkResult{
		Percentile:        percentile,
		Label:             labelForPercentile(percentile),
		EngagementVsNiche: engagementVs,
		FrequencyVsNiche:  frequencyVs,
		CombinedScore:     combined,
	}
}

// percentileForScore maps a combined benchmark score to a percentile.
func percentileForScore(score float64) int {
	switch {
	case score >= 2.0:
		return 95
	case score >= 1.5:
		return 85
	case score >= 1.1:
		return 70
	case score >= 0.8:
		return 50
	case score >= 0.5:
		return 30
	default:
		return 15
	}
}

// labelForPercentile maps a percentile to its display label. Its cutpoints
// (90/80/60/40) are authored independently of the score ladder's; keep the
// two tables separate.
func labelForPercentile(percentile int) string {
	switch {
	case percentile >= 90:
		return "Top 5%"
	case percentile >= 80:
		return "Top 15%"
	case percentile >= 60:
		return "Above Average"
	case percentile >= 40:
		return "Average"
	default:
		return "Below Average"
	}
}

// Tips generates rule-based advice for the channel. Rules fire in a fixed
// order over engagement standing, posting cadence, and channel size; a
// generic cadence tip is always appended; the list is cut to the first four.
func Tips(in models.GrowthInputs) []models.Tip {
	engagementVs := in.EngagementRatePercent / in.Niche.AvgEngagementPercent

	var tips []models.Tip

	if engagementVs < 0.7 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityHigh,
			Title:    "Lift engagement before chasing reach",
			Content: fmt.Sprintf(
				"Your engagement rate is %.1f%% against a niche average of %.1f%%. Polls, question posts, and reply threads raise it faster than new followers will.",
				in.EngagementRatePercent, in.Niche.AvgEngagementPercent),
		})
	} else if engagementVs >= 1.5 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityMedium,
			Title:    "Double down on what already works",
			Content:  "Your engagement is well above the niche norm. Repost your best-performing formats and ask followers to forward them; high engagement travels.",
		})
	}

	if in.PostsPerWeek < 3 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityHigh,
			Title:    "Post at least three times a week",
			Content: fmt.Sprintf(
				"At %.1f posts per week the channel stays quiet too long between updates. Three to five posts a week keeps you in feeds without burning out.",
				in.PostsPerWeek),
		})
	} else if in.PostsPerWeek > 10 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityLow,
			Title:    "More posts will not move the needle",
			Content:  "Past ten posts a week the growth benefit flattens out. Put the extra effort into post quality instead of volume.",
		})
	}

	if in.Followers < 1000 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityMedium,
			Title:    "Borrow audiences while yours is small",
			Content:  "Cross-promote with creators one size up and link the channel everywhere your existing audience already is. Early growth is mostly referral.",
		})
	} else if in.Followers >= 100_000 {
		tips = append(tips, models.Tip{
			Priority: models.TipPriorityLow,
			Title:    "Guard engagement at scale",
			Content:  "Large channels decay quietly. Retire formats that stopped performing and keep reply-worthy posts in the mix.",
		})
	}

	tips = append(tips, models.Tip{
		Priority: models.TipPriorityLow,
		Title:    "Consistency compounds",
		Content:  "A predictable posting schedule is the most reliable growth input you control. Steady cadence beats bursts.",
	})

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

// Analyze composes the full growth report for one input record: projections,
// milestones, benchmark, tips, and revenue estimates at the current and
// projected month-12 expected sizes.
func Analyze(in models.GrowthInputs) models.GrowthReport {
	start := seededStart(in.Followers)
	proj := Project(in)

	return models.GrowthReport{
		StartFollowers:             start,
		Projections:                proj,
		Milestones:                 Milestones(in, proj),
		Benchmark:                  Benchmark(in),
		Tips:                       Tips(in),
		CurrentMonthlyRevenueUSD:   Monetization(start, in.Niche),
		ProjectedMonthlyRevenueUSD: Monetization(proj.Summary.Expected, in.Niche),
	}
}
