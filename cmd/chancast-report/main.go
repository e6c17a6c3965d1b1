// chancast-report runs a single calculation from the command line and prints
// the result JSON to stdout. It needs no config file; every input is a flag.
//
// Examples:
//
//	chancast-report -mode growth -followers 1000 -posts-per-week 3 -engagement 8 -niche tech
//	chancast-report -mode migration -subscribers 10000 -overlap 85 -frequency 2-3x
//	chancast-report -mode comparison -use-case business
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sparkfolk/channelcast/internal/comparison"
	"github.com/sparkfolk/channelcast/internal/growth"
	"github.com/sparkfolk/channelcast/internal/migration"
	"github.com/sparkfolk/channelcast/internal/models"
	"github.com/sparkfolk/channelcast/internal/niche"
)

var (
	mode = flag.String("mode", "growth", "Calculation to run: growth, migration, or comparison")

	followers    = flag.Int("followers", 0, "Current follower count (growth)")
	postsPerWeek = flag.Float64("posts-per-week", 3, "Posts per week (growth)")
	engagement   = flag.Float64("engagement", 5, "Engagement rate percent (growth)")
	nicheID      = flag.String("niche", "general", "Niche ID from the reference table (growth)")

	subscribers = flag.Int("subscribers", 0, "Source audience size (migration)")
	overlap     = flag.Float64("overlap", 50, "Audience overlap percent, 10-100 (migration)")
	frequency   = flag.String("frequency", "weekly", "Posting cadence: daily, 2-3x, weekly, monthly (migration)")

	useCase = flag.String("use-case", "creator", "Comparison lens: creator, business, or personal")

	compact = flag.Bool("compact", false, "Print compact JSON instead of indented")
)

func main() {
	flag.Parse()

	var result any
	switch *mode {
	case "growth":
		profile, known := niche.Lookup(*nicheID)
		if !known {
			fmt.Fprintf(os.Stderr, "unknown niche %q, using %s\n", *nicheID, profile.ID)
		}

		in := models.GrowthInputs{
			Followers:             *followers,
			PostsPerWeek:          *postsPerWeek,
			EngagementRatePercent: *engagement,
			Niche:                 profile,
		}
		if err := in.Validate(); err != nil {
			fatal(err)
		}
		result = growth.Analyze(in)

	case "migration":
		freq, err := models.ParsePostFrequency(*frequency)
		if err != nil {
			fatal(err)
		}

		in := models.MigrationInputs{
			SourceSubscribers: *subscribers,
			OverlapPercent:    *overlap,
			PostFrequency:     freq,
		}
		if err := in.Validate(); err != nil {
			fatal(err)
		}
		result = migration.Plan(in)

	case "comparison":
		uc, known := comparison.ParseUseCase(*useCase)
		if !known {
			fmt.Fprintf(os.Stderr, "unknown use case %q, using %s\n", *useCase, uc)
		}
		result = comparison.Compare(uc)

	default:
		fatal(fmt.Errorf("unknown mode %q: want growth, migration, or comparison", *mode))
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "chancast-report:", err)
	os.Exit(1)
}
