package growth

import (
	"math"
	"reflect"
	"testing"

	"github.com/sparkfolk/channelcast/internal/models"
	"github.com/sparkfolk/channelcast/internal/niche"
)

// generalNiche mirrors the first profile in the reference table; the worked
// examples below depend on its averages.
func generalNiche() niche.Profile {
	return niche.Profile{
		ID:                      "general",
		Label:                   "General / Mixed",
		AvgEngagementPercent:    8,
		AvgSubscriptionPriceUSD: 4.99,
		ConversionRatePercent:   3.0,
		Capacity:                300000,
	}
}

func inputs(followers int, postsPerWeek, engagementRate float64) models.GrowthInputs {
	return models.GrowthInputs{
		Followers:             followers,
		PostsPerWeek:          postsPerWeek,
		EngagementRatePercent: engagementRate,
		Niche:                 generalNiche(),
	}
}

// ─── EffectiveMonthlyRate ─────────────────────────────────────────────────────

func TestEffectiveMonthlyRate(t *testing.T) {
	n := generalNiche()

	tests := []struct {
		name             string
		followers        int
		engagementRate   float64
		postsPerWeek     float64
		wantMin, wantMax float64
	}{
		{
			name:      "worked example: 1000 followers, niche-average engagement, 3 posts",
			followers: 1000, engagementRate: 8, postsPerWeek: 3,
			wantMin: 0.0398, wantMax: 0.0400,
		},
		{
			name:      "zero posts still earns the 0.5 frequency floor",
			followers: 1000, engagementRate: 8, postsPerWeek: 0,
			wantMin: 0.0248, wantMax: 0.0250,
		},
		{
			name:      "zero engagement kills the rate",
			followers: 1000, engagementRate: 0, postsPerWeek: 5,
			wantMin: 0, wantMax: 0,
		},
		{
			name:      "zero followers is fully undampened",
			followers: 0, engagementRate: 8, postsPerWeek: 5,
			wantMin: 0.0499, wantMax: 0.0501,
		},
		{
			name:      "followers far past capacity dampen hard",
			followers: 3000000, engagementRate: 8, postsPerWeek: 5,
			wantMin: 0.004, wantMax: 0.005,
		},
		{
			name:      "everything maxed: 0.05 x 2.5 x 1.5 near zero followers",
			followers: 0, engagementRate: 50, postsPerWeek: 30,
			wantMin: 0.1874, wantMax: 0.1876,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveMonthlyRate(tt.followers, tt.engagementRate, tt.postsPerWeek, n)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("EffectiveMonthlyRate(%d, %v, %v) = %v (non-finite)",
					tt.followers, tt.engagementRate, tt.postsPerWeek, got)
			}
			if got < 0 {
				t.Errorf("EffectiveMonthlyRate(%d, %v, %v) = %v, want >= 0",
					tt.followers, tt.engagementRate, tt.postsPerWeek, got)
			}
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("EffectiveMonthlyRate(%d, %v, %v) = %v, want [%v, %v]",
					tt.followers, tt.engagementRate, tt.postsPerWeek, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestEffectiveMonthlyRateCaps(t *testing.T) {
	n := generalNiche()

	// Both rates sit past the 2.5x engagement cap against an average of 8,
	// so they must be identical, not merely close.
	at20 := EffectiveMonthlyRate(1000, 20, 5, n)
	at50 := EffectiveMonthlyRate(1000, 50, 5, n)
	if at20 != at50 {
		t.Errorf("engagement cap leaked: rate(er=20) = %v, rate(er=50) = %v", at20, at50)
	}

	// Likewise 10 and 30 posts per week both hit the 1.5x frequency cap.
	at10 := EffectiveMonthlyRate(1000, 8, 10, n)
	at30 := EffectiveMonthlyRate(1000, 8, 30, n)
	if at10 != at30 {
		t.Errorf("frequency cap leaked: rate(ppw=10) = %v, rate(ppw=30) = %v", at10, at30)
	}

	// Below the caps the rate must still respond to the input.
	at4 := EffectiveMonthlyRate(1000, 4, 5, n)
	at8 := EffectiveMonthlyRate(1000, 8, 5, n)
	if at4 >= at8 {
		t.Errorf("rate not increasing below cap: rate(er=4) = %v, rate(er=8) = %v", at4, at8)
	}
}

// ─── Project ──────────────────────────────────────────────────────────────────

func TestProjectWorkedExample(t *testing.T) {
	proj := Project(inputs(1000, 3, 8))

	if len(proj.Monthly) != 12 {
		t.Fatalf("Project returned %d months, want 12", len(proj.Monthly))
	}

	m1 := proj.Monthly[0]
	if m1.Expected != 1040 {
		t.Errorf("month-1 expected = %d, want 1040", m1.Expected)
	}
	if m1.Conservative != 1024 {
		t.Errorf("month-1 conservative = %d, want 1024", m1.Conservative)
	}
	if m1.Optimistic != 1060 {
		t.Errorf("month-1 optimistic = %d, want 1060", m1.Optimistic)
	}
}

func TestProjectInvariants(t *testing.T) {
	cases := []struct {
		name string
		in   models.GrowthInputs
	}{
		{name: "typical channel", in: inputs(1000, 3, 8)},
		{name: "empty channel", in: inputs(0, 5, 10)},
		{name: "zero engagement", in: inputs(5000, 5, 0)},
		{name: "zero posting", in: inputs(5000, 0, 8)},
		{name: "near capacity", in: inputs(295000, 3, 8)},
		{name: "past capacity", in: inputs(3000000, 5, 12)},
		{name: "maxed multipliers", in: inputs(200, 30, 50)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proj := Project(tc.in)

			if len(proj.Monthly) != 12 {
				t.Fatalf("got %d months, want 12", len(proj.Monthly))
			}

			prev := models.MonthProjection{
				Conservative: seededStart(tc.in.Followers),
				Expected:     seededStart(tc.in.Followers),
				Optimistic:   seededStart(tc.in.Followers),
			}
			for i, mp := range proj.Monthly {
				if mp.Month != i+1 {
					t.Errorf("monthly[%d].Month = %d, want %d", i, mp.Month, i+1)
				}
				if mp.Conservative < prev.Conservative || mp.Expected < prev.Expected || mp.Optimistic < prev.Optimistic {
					t.Errorf("month %d shrank a scenario: %+v after %+v", mp.Month, mp, prev)
				}
				if !(mp.Conservative <= mp.Expected && mp.Expected <= mp.Optimistic) {
					t.Errorf("month %d scenario ordering broken: %+v", mp.Month, mp)
				}
				prev = mp
			}

			last := proj.Monthly[11]
			if proj.Summary.Conservative != last.Conservative ||
				proj.Summary.Expected != last.Expected ||
				proj.Summary.Optimistic != last.Optimistic {
				t.Errorf("summary %+v does not match month 12 %+v", proj.Summary, last)
			}
		})
	}
}

func TestProjectZeroFollowerSeeding(t *testing.T) {
	proj := Project(inputs(0, 3, 8))

	// Seeded at 50, one month of positive growth lands at 52.
	if got := proj.Monthly[0].Expected; got != 52 {
		t.Errorf("month-1 expected from empty channel = %d, want 52", got)
	}
	if proj.Monthly[0].Expected <= zeroFollowerSeed {
		t.Errorf("month-1 expected = %d, want > seed %d", proj.Monthly[0].Expected, zeroFollowerSeed)
	}
}

func TestProjectZeroEngagementStaysFlat(t *testing.T) {
	proj := Project(inputs(5000, 5, 0))
	for _, mp := range proj.Monthly {
		if mp.Conservative != 5000 || mp.Expected != 5000 || mp.Optimistic != 5000 {
			t.Fatalf("month %d moved with zero engagement: %+v", mp.Month, mp)
		}
	}
}

func TestProjectSaturation(t *testing.T) {
	near := Project(inputs(295000, 3, 8))
	far := Project(inputs(1000, 3, 8))

	nearGrowth := float64(near.Summary.Expected-295000) / 295000
	farGrowth := float64(far.Summary.Expected-1000) / 1000

	if nearGrowth >= 0.30 {
		t.Errorf("near-capacity 12-month growth = %.3f, want < 0.30", nearGrowth)
	}
	if farGrowth <= 0.45 {
		t.Errorf("far-from-capacity 12-month growth = %.3f, want > 0.45", farGrowth)
	}
	if nearGrowth >= farGrowth {
		t.Errorf("saturation not biting: near %.3f >= far %.3f", nearGrowth, farGrowth)
	}
}

func TestProjectDeterminism(t *testing.T) {
	in := inputs(1234, 4.5, 9.25)
	first := Project(in)
	second := Project(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Project is not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

// ─── Milestones ───────────────────────────────────────────────────────────────

func TestMilestonesFiltering(t *testing.T) {
	tests := []struct {
		name        string
		followers   int
		wantTargets []int
	}{
		{
			name:        "empty channel sees all five targets",
			followers:   0,
			wantTargets: []int{10000, 50000, 100000, 500000, 1000000},
		},
		{
			name:        "mid-size channel drops passed targets",
			followers:   60000,
			wantTargets: []int{100000, 500000, 1000000},
		},
		{
			name:        "target equal to start is dropped",
			followers:   100000,
			wantTargets: []int{500000, 1000000},
		},
		{
			name:        "mega channel keeps only the last",
			followers:   600000,
			wantTargets: []int{1000000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs(tt.followers, 3, 8)
			got := Milestones(in, Project(in))

			if len(got) != len(tt.wantTargets) {
				t.Fatalf("got %d milestones, want %d", len(got), len(tt.wantTargets))
			}
			start := seededStart(tt.followers)
			for i, m := range got {
				if m.Target != tt.wantTargets[i] {
					t.Errorf("milestone[%d].Target = %d, want %d", i, m.Target, tt.wantTargets[i])
				}
				if m.Target <= start {
					t.Errorf("milestone target %d not above start %d", m.Target, start)
				}
			}
		})
	}
}

func TestMilestonesCrossingOrder(t *testing.T) {
	// Strong growth so 10K is reached by every scenario within a year.
	in := inputs(8000, 10, 20)
	ms := Milestones(in, Project(in))

	if len(ms) == 0 {
		t.Fatal("expected at least one milestone")
	}
	first := ms[0]
	if first.Target != 10000 {
		t.Fatalf("first milestone target = %d, want 10000", first.Target)
	}
	if first.ExpectedMonth == nil || first.OptimisticMonth == nil || first.ConservativeMonth == nil {
		t.Fatalf("10K should be reached by all scenarios, got %+v", first)
	}
	if *first.OptimisticMonth > *first.ExpectedMonth {
		t.Errorf("optimistic reaches 10K at month %d, after expected month %d",
			*first.OptimisticMonth, *first.ExpectedMonth)
	}
	if *first.ExpectedMonth > *first.ConservativeMonth {
		t.Errorf("expected reaches 10K at month %d, after conservative month %d",
			*first.ExpectedMonth, *first.ConservativeMonth)
	}
}

func TestMilestonesUnreachedAreNil(t *testing.T) {
	// Weak inputs: a 1000-follower channel at rock-bottom engagement never
	// gets near 10K in a year.
	in := inputs(1000, 0, 1)
	ms := Milestones(in, Project(in))

	if len(ms) != 5 {
		t.Fatalf("got %d milestones, want 5", len(ms))
	}
	for _, m := range ms {
		if m.ConservativeMonth != nil || m.ExpectedMonth != nil || m.OptimisticMonth != nil {
			t.Errorf("milestone %s should be unreached, got %+v", m.Label, m)
		}
	}
}

func TestMilestoneRevenue(t *testing.T) {
	in := inputs(1000, 3, 8)
	ms := Milestones(in, Project(in))

	// 10000 x 3% conversion x $4.99 x 0.9 platform share = $1347.30
	want := 1347.30
	if got := ms[0].MonthlyRevenueUSD; math.Abs(got-want) > 0.01 {
		t.Errorf("10K milestone revenue = %v, want %v", got, want)
	}
}

// ─── Monetization ─────────────────────────────────────────────────────────────

func TestMonetization(t *testing.T) {
	tests := []struct {
		name      string
		followers int
		n         niche.Profile
		want      float64
	}{
		{
			name:      "worked example: 100K at 5% conversion and $4",
			followers: 100000,
			n:         niche.Profile{ConversionRatePercent: 5, AvgSubscriptionPriceUSD: 4, Capacity: 1},
			want:      18000,
		},
		{
			name:      "zero followers earn nothing",
			followers: 0,
			n:         generalNiche(),
			want:      0,
		},
		{
			name:      "general niche at 10K",
			followers: 10000,
			n:         generalNiche(),
			want:      1347.30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Monetization(tt.followers, tt.n)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Monetization(%d) = %v, want %v", tt.followers, got, tt.want)
			}
		})
	}
}

// ─── Benchmark ────────────────────────────────────────────────────────────────

func TestBenchmark(t *testing.T) {
	tests := []struct {
		name           string
		engagementRate float64
		postsPerWeek   float64
		wantPercentile int
		wantLabel      string
	}{
		{
			name:           "niche-average engagement, light posting",
			engagementRate: 8, postsPerWeek: 3,
			// combined = 0.6*1.0 + 0.4*0.6 = 0.84
			wantPercentile: 50, wantLabel: "Average",
		},
		{
			name:           "strong on both axes",
			engagementRate: 20, postsPerWeek: 10,
			// combined = 0.6*2.5 + 0.4*2.0 = 2.3
			wantPercentile: 95, wantLabel: "Top 5%",
		},
		{
			name:           "solidly above average",
			engagementRate: 12, postsPerWeek: 6,
			// combined = 0.6*1.5 + 0.4*1.2 = 1.38
			wantPercentile: 70, wantLabel: "Above Average",
		},
		{
			name:           "weak but not bottom lands below average",
			engagementRate: 4, postsPerWeek: 3,
			// combined = 0.6*0.5 + 0.4*0.6 = 0.54: percentile 30 sits under
			// the label ladder's 40 floor
			wantPercentile: 30, wantLabel: "Below Average",
		},
		{
			name:           "near zero on both axes",
			engagementRate: 1, postsPerWeek: 0,
			// combined = 0.6*0.125 = 0.075
			wantPercentile: 15, wantLabel: "Below Average",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Benchmark(inputs(1000, tt.postsPerWeek, tt.engagementRate))
			if got.Percentile != tt.wantPercentile {
				t.Errorf("percentile = %d, want %d", got.Percentile, tt.wantPercentile)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestBenchmarkRatios(t *testing.T) {
	got := Benchmark(inputs(1000, 3, 8))
	if math.Abs(got.EngagementVsNiche-1.0) > 1e-9 {
		t.Errorf("engagement ratio = %v, want 1.0", got.EngagementVsNiche)
	}
	if math.Abs(got.FrequencyVsNiche-0.6) > 1e-9 {
		t.Errorf("frequency ratio = %v, want 0.6", got.FrequencyVsNiche)
	}
	if math.Abs(got.CombinedScore-0.84) > 1e-9 {
		t.Errorf("combined score = %v, want 0.84", got.CombinedScore)
	}

	// The engagement ratio is reported raw; only the growth rate caps it.
	high := Benchmark(inputs(1000, 3, 50))
	if math.Abs(high.EngagementVsNiche-6.25) > 1e-9 {
		t.Errorf("engagement ratio = %v, want uncapped 6.25", high.EngagementVsNiche)
	}
}

func TestPercentileLadder(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{2.5, 95}, {2.0, 95},
		{1.9, 85}, {1.5, 85},
		{1.3, 70}, {1.1, 70},
		{1.0, 50}, {0.8, 50},
		{0.7, 30}, {0.5, 30},
		{0.4, 15}, {0, 15},
	}
	for _, tt := range tests {
		if got := percentileForScore(tt.score); got != tt.want {
			t.Errorf("percentileForScore(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestLabelLadder(t *testing.T) {
	tests := []struct {
		percentile int
		want       string
	}{
		{95, "Top 5%"}, {90, "Top 5%"},
		{85, "Top 15%"}, {80, "Top 15%"},
		{70, "Above Average"}, {60, "Above Average"},
		{50, "Average"}, {40, "Average"},
		{30, "Below Average"}, {15, "Below Average"}, {0, "Below Average"},
	}
	for _, tt := range tests {
		if got := labelForPercentile(tt.percentile); got != tt.want {
			t.Errorf("labelForPercentile(%d) = %q, want %q", tt.percentile, got, tt.want)
		}
	}
}

// ─── Tips ─────────────────────────────────────────────────────────────────────

func TestTips(t *testing.T) {
	tests := []struct {
		name          string
		in            models.GrowthInputs
		wantLen       int
		wantFirst     string
		wantPriority  models.TipPriority
		wantGenericAt int // index of the always-on tip
	}{
		{
			name:          "struggling channel fires three rules plus generic",
			in:            inputs(100, 1, 2),
			wantLen:       4,
			wantFirst:     "Lift engagement before chasing reach",
			wantPriority:  models.TipPriorityHigh,
			wantGenericAt: 3,
		},
		{
			name:          "healthy channel gets only the generic tip",
			in:            inputs(5000, 5, 8),
			wantLen:       1,
			wantFirst:     "Consistency compounds",
			wantPriority:  models.TipPriorityLow,
			wantGenericAt: 0,
		},
		{
			name:          "overachiever fires the upper-bound rules",
			in:            inputs(500000, 12, 20),
			wantLen:       4,
			wantFirst:     "Double down on what already works",
			wantPriority:  models.TipPriorityMedium,
			wantGenericAt: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tips(tt.in)
			if len(got) != tt.wantLen {
				t.Fatalf("got %d tips, want %d: %+v", len(got), tt.wantLen, got)
			}
			if len(got) > maxTips {
				t.Fatalf("got %d tips, exceeds cap %d", len(got), maxTips)
			}
			if got[0].Title != tt.wantFirst {
				t.Errorf("first tip = %q, want %q", got[0].Title, tt.wantFirst)
			}
			if got[0].Priority != tt.wantPriority {
				t.Errorf("first tip priority = %q, want %q", got[0].Priority, tt.wantPriority)
			}
			if got[tt.wantGenericAt].Title != "Consistency compounds" {
				t.Errorf("tip[%d] = %q, want the generic tip", tt.wantGenericAt, got[tt.wantGenericAt].Title)
			}
		})
	}
}

func TestTipsNeverExceedCap(t *testing.T) {
	// Sweep a grid of inputs; no combination may exceed the cap.
	for _, followers := range []int{0, 100, 1000, 50000, 100000, 500000} {
		for _, ppw := range []float64{0, 1, 3, 5, 11, 30} {
			for _, er := range []float64{0, 2, 8, 13, 50} {
				got := Tips(inputs(followers, ppw, er))
				if len(got) > maxTips {
					t.Fatalf("Tips(%d, %v, %v) returned %d tips, cap is %d",
						followers, ppw, er, len(got), maxTips)
				}
				if len(got) == 0 {
					t.Fatalf("Tips(%d, %v, %v) returned no tips; generic tip must always fire",
						followers, ppw, er)
				}
			}
		}
	}
}

// ─── Analyze ──────────────────────────────────────────────────────────────────

func TestAnalyze(t *testing.T) {
	in := inputs(1000, 3, 8)
	report := Analyze(in)

	if report.StartFollowers != 1000 {
		t.Errorf("StartFollowers = %d, want 1000", report.StartFollowers)
	}
	if len(report.Projections.Monthly) != 12 {
		t.Errorf("got %d projection months, want 12", len(report.Projections.Monthly))
	}
	if report.Projections.Monthly[0].Expected != 1040 {
		t.Errorf("month-1 expected = %d, want 1040", report.Projections.Monthly[0].Expected)
	}

	wantCurrent := Monetization(1000, in.Niche)
	if math.Abs(report.CurrentMonthlyRevenueUSD-wantCurrent) > 1e-9 {
		t.Errorf("current revenue = %v, want %v", report.CurrentMonthlyRevenueUSD, wantCurrent)
	}
	wantProjected := Monetization(report.Projections.Summary.Expected, in.Niche)
	if math.Abs(report.ProjectedMonthlyRevenueUSD-wantProjected) > 1e-9 {
		t.Errorf("projected revenue = %v, want %v", report.ProjectedMonthlyRevenueUSD, wantProjected)
	}
	if report.ProjectedMonthlyRevenueUSD <= report.CurrentMonthlyRevenueUSD {
		t.Errorf("projected revenue %v should exceed current %v for a growing channel",
			report.ProjectedMonthlyRevenueUSD, report.CurrentMonthlyRevenueUSD)
	}
	if len(report.Tips) == 0 || len(report.Tips) > maxTips {
		t.Errorf("got %d tips, want 1..%d", len(report.Tips), maxTips)
	}
}

func TestAnalyzeSeedsEmptyChannel(t *testing.T) {
	report := Analyze(inputs(0, 3, 8))
	if report.StartFollowers != zeroFollowerSeed {
		t.Errorf("StartFollowers = %d, want seed %d", report.StartFollowers, zeroFollowerSeed)
	}
	if len(report.Milestones) != 5 {
		t.Errorf("got %d milestones for an empty channel, want all 5", len(report.Milestones))
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	in := inputs(777, 4, 11)
	if !reflect.DeepEqual(Analyze(in), Analyze(in)) {
		t.Error("Analyze is not deterministic for equal inputs")
	}
}
