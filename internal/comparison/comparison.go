// Package comparison implements the platform feature-comparison filter: a
// static dataset of WhatsApp-vs-Telegram channel features with per-use-case
// relevance filtering, category grouping, a winner tally, and a verdict
// lookup. The dataset is an immutable reference table; refreshing it is a
// redeploy, not a write path.
package comparison

// UseCase selects which relevance lens filters the feature table.
type UseCase string

// Supported use cases.
const (
	UseCaseCreator  UseCase = "creator"
	UseCaseBusiness UseCase = "business"
	UseCasePersonal UseCase = "personal"
)

// ParseUseCase maps a user-entered string to a UseCase. Unknown values fall
// back to the creator lens, reported via ok.
func ParseUseCase(s string) (uc UseCase, ok bool) {
	switch UseCase(s) {
	case UseCaseCreator, UseCaseBusiness, UseCasePersonal:
		return UseCase(s), true
	default:
		return UseCaseCreator, false
	}
}

// Winner says which platform a feature row favors. "depends" rows favor
// neither side and stay out of every tally bucket.
type Winner string

// Winner values.
const (
	WinnerWhatsApp Winner = "whatsapp"
	WinnerTelegram Winner = "telegram"
	WinnerTie      Winner = "tie"
	WinnerDepends  Winner = "depends"
)

// ProductAssessment scores one platform on one feature, 1 (worst) to 5.
type ProductAssessment struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// Feature is one immutable comparison row.
type Feature struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	WhatsApp    ProductAssessment `json:"whatsapp"`
	Telegram    ProductAssessment `json:"telegram"`
	Winner      Winner            `json:"winner"`
	ForCreators bool              `json:"for_creators"`
	ForBusiness bool              `json:"for_business"`
	ForPersonal bool              `json:"for_personal"`
}

// relevantTo reports whether the row matters under the given lens.
func (f Feature) relevantTo(uc UseCase) bool {
	switch uc {
	case UseCaseBusiness:
		return f.ForBusiness
	case UseCasePersonal:
		return f.ForPersonal
	default:
		return f.ForCreators
	}
}

// CategoryGroup is one display section of filtered rows.
type CategoryGroup struct {
	Category string    `json:"category"`
	Features []Feature `json:"features"`
}

// Tally counts decided rows per platform. Rows whose winner is "depends"
// appear in no bucket, so the three counts can sum to less than the number
// of filtered rows.
type Tally struct {
	WhatsApp int `json:"whatsapp"`
	Telegram int `json:"telegram"`
	Ties     int `json:"ties"`
}

// Verdict is the fixed editorial summary for one use case.
type Verdict struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	CTA      string `json:"cta"`
}

// View is a fully derived comparison for one use case: filtered rows grouped
// in the fixed category display order (empty categories dropped), the winner
// tally, and the use case's verdict.
type View struct {
	UseCase UseCase         `json:"use_case"`
	Groups  []CategoryGroup `json:"groups"`
	Tally   Tally           `json:"tally"`
	Verdict Verdict         `json:"verdict"`
}

// Compare filters the feature table through the given lens and derives the
// grouped view. An unknown use case degrades to the creator lens.
func Compare(useCase UseCase) View {
	uc, _ := ParseUseCase(string(useCase))

	var filtered []Feature
	for _, f := range features {
		if f.relevantTo(uc) {
			filtered = append(filtered, f)
		}
	}

	return View{
		UseCase: uc,
		Groups:  groupByCategory(filtered),
		Tally:   tallyWinners(filtered),
		Verdict: verdicts[uc],
	}
}

// groupByCategory buckets rows in the fixed display order, dropping
// categories the filter emptied.
func groupByCategory(rows []Feature) []CategoryGroup {
	byCategory := make(map[string][]Feature, len(categoryOrder))
	for _, f := range rows {
		byCategory[f.Category] = append(byCategory[f.Category], f)
	}

	groups := make([]CategoryGroup, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		if members := byCategory[cat]; len(members) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Features: members})
		}
	}
	return groups
}

// tallyWinners counts decided rows; "depends" rows are skipped entirely.
func tallyWinners(rows []Feature) Tally {
	var t Tally
	for _, f := range rows {
		switch f.Winner {
		case WinnerWhatsApp:
			t.WhatsApp++
		case WinnerTelegram:
			t.Telegram++
		case WinnerTie:
			t.Ties++
		}
	}
	return t
}

// Features returns a copy of the full reference table.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}
