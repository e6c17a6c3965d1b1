package telegram

import (
	"fmt"

	"github.com/sparkfolk/channelcast/internal/comparison"
	"github.com/sparkfolk/channelcast/internal/models"
)

// formatGrowthCard renders a growth report as a MarkdownV2 summary card.
func formatGrowthCard(in models.GrowthInputs, report models.GrowthReport) string {
	s := report.Projections.Summary

	message := "📈 *12 Month Growth Projection*\n\n"
	message += fmt.Sprintf("Niche: %s\n", escapeMarkdownV2(in.Niche.Label))
	message += fmt.Sprintf("Starting from %d followers\n\n", report.StartFollowers)

	message += fmt.Sprintf("Month 12 expected: *%d*\n", s.Expected)
	message += fmt.Sprintf("Conservative %d · Optimistic %d\n\n", s.Conservative, s.Optimistic)

	message += fmt.Sprintf("Benchmark: %s \\(percentile %d\\)\n",
		escapeMarkdownV2(report.Benchmark.Label), report.Benchmark.Percentile)
	message += fmt.Sprintf("Projected revenue: %s/month\n",
		escapeMarkdownV2(fmt.Sprintf("$%.0f", report.ProjectedMonthlyRevenueUSD)))

	if m := nextExpectedMilestone(report.Milestones); m != nil {
		message += fmt.Sprintf("Next milestone: %s by month %d\n",
			escapeMarkdownV2(m.Label), *m.ExpectedMonth)
	}

	if len(report.Tips) > 0 {
		message += fmt.Sprintf("\n💡 %s\n", escapeMarkdownV2(report.Tips[0].Title))
	}

	return message
}

// nextExpectedMilestone returns the smallest milestone the expected scenario
// reaches within the horizon, nil when none is reached.
func nextExpectedMilestone(milestones []models.Milestone) *models.Milestone {
	for i := range milestones {
		if milestones[i].ExpectedMonth != nil {
			return &milestones[i]
		}
	}
	return nil
}

// formatMigrationCard renders a migration plan as a MarkdownV2 summary card.
func formatMigrationCard(in models.MigrationInputs, plan models.MigrationPlan) string {
	message := "🔀 *Migration Plan*\n\n"
	message += fmt.Sprintf("Mode: %s\n", escapeMarkdownV2(string(plan.Mode)))
	message += fmt.Sprintf("Reachable audience: %d of %d\n\n", plan.Reachable, in.SourceSubscribers)

	if weeks := plan.Timeline.Weeks; len(weeks) > 0 {
		last := weeks[len(weeks)-1]
		message += fmt.Sprintf("Week %d expected: *%d*\n", last.Week, last.Expected)
	}
	if w := plan.Timeline.HalfReachedWeek; w != nil {
		message += fmt.Sprintf("50%% reached: week %d\n", *w)
	}
	if w := plan.Timeline.NinetyReachedWeek; w != nil {
		message += fmt.Sprintf("90%% reached: week %d\n", *w)
	}

	for _, card := range plan.Strategy.Cards {
		if card.Recommended {
			message += fmt.Sprintf("\nRecommended: *%s* \\(about %d weeks\\)\n",
				escapeMarkdownV2(card.Title), card.TimelineWeeks)
			break
		}
	}

	return message
}

// formatComparisonCard renders a comparison view as a MarkdownV2 summary card.
func formatComparisonCard(view comparison.View) string {
	message := fmt.Sprintf("⚖️ *WhatsApp vs Telegram* \\(%s\\)\n\n",
		escapeMarkdownV2(string(view.UseCase)))
	message += fmt.Sprintf("WhatsApp wins %d · Telegram wins %d · Ties %d\n\n",
		view.Tally.WhatsApp, view.Tally.Telegram, view.Tally.Ties)
	message += fmt.Sprintf("*%s*\n%s\n",
		escapeMarkdownV2(view.Verdict.Headline), escapeMarkdownV2(view.Verdict.Summary))
	return message
}

func usageGrowth(err error) string {
	return escapeMarkdownV2(err.Error()) + "\n\n" +
		escapeMarkdownV2("Usage: /growth <followers> <posts_per_week> <engagement%> [niche]\nExample: /growth 1000 3 8 tech")
}

func usageMigrate(err error) string {
	return escapeMarkdownV2(err.Error()) + "\n\n" +
		escapeMarkdownV2("Usage: /migrate <subscribers> <overlap%> <daily|2-3x|weekly|monthly>\nExample: /migrate 10000 85 2-3x")
}
