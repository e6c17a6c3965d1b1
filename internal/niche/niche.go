// Package niche holds the static niche reference table used by the growth
// calculators. Profiles describe the average engagement, pricing, and
// audience ceiling observed per content category; they are compiled into the
// binary and never mutated at runtime. A data refresh is a redeploy, not a
// write path.
package niche

// Profile is one niche reference record. Capacity acts as a soft follower
// ceiling that dampens projected growth; it is always positive, which keeps
// the dampening denominator away from zero.
type Profile struct {
	ID                      string  `json:"id"`
	Label                   string  `json:"label"`
	AvgEngagementPercent    float64 `json:"avg_engagement_percent"`
	AvgSubscriptionPriceUSD float64 `json:"avg_subscription_price_usd"`
	ConversionRatePercent   float64 `json:"conversion_rate_percent"`
	Capacity                int     `json:"capacity"`
}

// profiles is the reference table. The first entry doubles as the fallback
// for unknown IDs, so "general" must stay in position zero.
var profiles = []Profile{
	{ID: "general", Label: "General / Mixed", AvgEngagementPercent: 8, AvgSubscriptionPriceUSD: 4.99, ConversionRatePercent: 3.0, Capacity: 300000},
	{ID: "entertainment", Label: "Entertainment & Memes", AvgEngagementPercent: 12, AvgSubscriptionPriceUSD: 2.99, ConversionRatePercent: 2.0, Capacity: 1000000},
	{ID: "gaming", Label: "Gaming & Esports", AvgEngagementPercent: 11, AvgSubscriptionPriceUSD: 3.99, ConversionRatePercent: 2.5, Capacity: 800000},
	{ID: "beauty", Label: "Beauty & Fashion", AvgEngagementPercent: 10, AvgSubscriptionPriceUSD: 4.99, ConversionRatePercent: 4.5, Capacity: 500000},
	{ID: "fitness", Label: "Fitness & Health", AvgEngagementPercent: 9, AvgSubscriptionPriceUSD: 5.99, ConversionRatePercent: 5.0, Capacity: 400000},
	{ID: "food", Label: "Food & Cooking", AvgEngagementPercent: 9, AvgSubscriptionPriceUSD: 3.99, ConversionRatePercent: 3.0, Capacity: 350000},
	{ID: "travel", Label: "Travel & Lifestyle", AvgEngagementPercent: 8, AvgSubscriptionPriceUSD: 4.99, ConversionRatePercent: 2.5, Capacity: 300000},
	{ID: "tech", Label: "Tech & Startups", AvgEngagementPercent: 7, AvgSubscriptionPriceUSD: 6.99, ConversionRatePercent: 3.5, Capacity: 250000},
	{ID: "education", Label: "Education & Courses", AvgEngagementPercent: 7, AvgSubscriptionPriceUSD: 7.99, ConversionRatePercent: 4.0, Capacity: 200000},
	{ID: "finance", Label: "Finance & Investing", AvgEngagementPercent: 6, AvgSubscriptionPriceUSD: 9.99, ConversionRatePercent: 3.0, Capacity: 150000},
}

// Default returns the fallback profile used when a niche ID cannot be
// resolved. Calculators feed a non-critical marketing display, so a bad ID
// degrades to the general profile instead of failing the calculation.
func Default() Profile {
	return profiles[0]
}

// Lookup resolves a niche ID to its profile. Unknown (or empty) IDs return
// the default profile and ok=false so callers can surface the fallback.
func Lookup(id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Default(), false
}

// All returns a copy of the reference table in display order.
func All() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
