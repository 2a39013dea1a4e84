package quiz

import (
	"math"
	"sort"
	"strings"

	"github.com/toolscout/toolscout/internal/catalog"
)

// Result is the normalized dimension profile for one answer set.
type Result struct {
	// Dimensions maps every dimension to a score in [0,100], relative to the
	// strongest dimension for this answer set.
	Dimensions map[Dimension]int `json:"dimensions"`
	// TopDimensions holds the three highest-scoring dimensions in descending
	// order. Ties preserve the AllDimensions enumeration order.
	TopDimensions []Dimension `json:"top_dimensions"`
}

// Recommendation is a catalog tool plus the score and reasons it earned
// against a quiz result.
type Recommendation struct {
	catalog.Tool
	Score        float64  `json:"score"`
	MatchPercent int      `json:"match_percent"`
	MatchReasons []string `json:"match_reasons"`
}

// Engine scores answer sets and ranks catalog tools against them. Engines are
// stateless beyond their immutable configuration and safe for concurrent use.
type Engine struct {
	bank   Bank
	tuning Tuning
	boosts []Boost
}

// NewEngine creates an engine over a question bank.
func NewEngine(bank Bank, tuning Tuning, boosts []Boost) *Engine {
	return &Engine{bank: bank, tuning: tuning, boosts: boosts}
}

// Bank returns the question bank the engine scores against.
func (e *Engine) Bank() Bank {
	return e.bank
}

// CalculateResults accumulates the chosen answers' dimension weights and
// normalizes them to [0,100] relative to the strongest dimension.
//
// answers[i] must be a valid index into e.bank[i].Answers; that is the
// caller's contract (input comes from a constrained UI) and violations panic
// via slice indexing rather than being translated.
func (e *Engine) CalculateResults(answers []int) Result {
	totals := make(map[Dimension]int, len(AllDimensions))
	for _, d := range AllDimensions {
		totals[d] = 0
	}

	for qi, ai := range answers {
		for d, w := range e.bank[qi].Answers[ai].Weights {
			totals[d] += w
		}
	}

	max := 0
	for _, v := range totals {
		if v > max {
			max = v
		}
	}

	dims := make(map[Dimension]int, len(AllDimensions))
	for d, v := range totals {
		if max > 0 {
			dims[d] = int(math.Round(float64(v) / float64(max) * 100))
		} else {
			// All-zero answer set: leave every score at 0.
			dims[d] = 0
		}
	}

	ranked := make([]Dimension, len(AllDimensions))
	copy(ranked, AllDimensions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return dims[ranked[i]] > dims[ranked[j]]
	})

	return Result{Dimensions: dims, TopDimensions: ranked[:3]}
}

// RecommendTools scores every catalog tool against a result and returns the
// top three with score > 0, descending; equal scores keep catalog order.
//
// The badge bonus appends its generic alignment reason once per qualifying
// dimension, so the same reason can appear more than once; more matched
// dimensions read as more emphasis.
func (e *Engine) RecommendTools(result Result, cat *catalog.Catalog) []Recommendation {
	var recs []Recommendation

	enterprise := result.Dimensions[DimData] > e.tuning.EnterpriseThreshold

	for _, tool := range cat.Tools() {
		score := 0.0
		var reasons []string

		// Category match against the top three dimensions, weighted by rank.
		for rank, dim := range result.TopDimensions {
			if !categoryInDimension(tool.Category, dim) {
				continue
			}
			weight := float64(3 - rank)
			score += weight * e.tuning.CategoryUnit
			if rank == 0 {
				reasons = append(reasons, "Perfect for "+dim.Label()+" needs")
			} else {
				reasons = append(reasons, "Strong "+dim.Label()+" capabilities")
			}
		}

		// Keyword density over every dimension, scaled by dimension score.
		blob := toolTextBlob(tool)
		for _, dim := range AllDimensions {
			dimScore := float64(result.Dimensions[dim])
			if dimScore == 0 {
				continue
			}
			hits := 0
			for _, kw := range dimensionKeywords[dim] {
				if strings.Contains(blob, kw) {
					hits++
				}
			}
			score += dimScore / 100 * float64(hits) * e.tuning.KeywordUnit
		}

		// Badge matches, scaled the same way.
		for _, dim := range AllDimensions {
			dimScore := float64(result.Dimensions[dim])
			hits := badgeMatches(tool.Badges, dimensionBadges[dim])
			if hits == 0 {
				continue
			}
			score += dimScore / 100 * float64(hits) * e.tuning.BadgeUnit
			if dimScore > 50 {
				reasons = append(reasons, "Features align with your requirements")
			}
		}

		// Curated special-case boosts.
		for _, b := range e.boosts {
			if b.ToolSlug != tool.Slug {
				continue
			}
			if !dimensionInTop(result.TopDimensions, b.TopDimension) {
				continue
			}
			score += b.Bonus
			reasons = append(reasons, b.Reason)
		}

		// Pricing heuristic: Data score is the budget proxy.
		pricing := strings.ToLower(tool.PricingNote)
		if !enterprise && strings.Contains(pricing, "free") {
			score += e.tuning.PricingBonus
			reasons = append(reasons, "Has a free tier to start with")
		}
		if enterprise && strings.Contains(pricing, "enterprise") {
			score += e.tuning.PricingBonus
			reasons = append(reasons, "Built for enterprise budgets")
		}

		if score <= 0 {
			continue
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "Good overall fit for your profile")
		}

		recs = append(recs, Recommendation{
			Tool:         tool,
			Score:        score,
			MatchPercent: e.MatchPercent(score),
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// MatchPercent maps a raw score to a display percentage, capped at 99 so the
// UI never claims a perfect match.
func (e *Engine) MatchPercent(score float64) int {
	pct := int(math.Round(score / e.tuning.DisplayCeiling * 100))
	if pct > 99 {
		pct = 99
	}
	return pct
}

func categoryInDimension(category string, dim Dimension) bool {
	for _, c := range dimensionCategories[dim] {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func dimensionInTop(top []Dimension, dim Dimension) bool {
	for _, d := range top {
		if d == dim {
			return true
		}
	}
	return false
}

func badgeMatches(badges, wanted []string) int {
	hits := 0
	for _, b := range badges {
		for _, w := range wanted {
			if strings.EqualFold(b, w) {
				hits++
				break
			}
		}
	}
	return hits
}

func toolTextBlob(t catalog.Tool) string {
	var sb strings.Builder
	sb.WriteString(t.Blurb)
	for _, p := range t.Pros {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	for _, c := range t.Cons {
		sb.WriteString(" ")
		sb.WriteString(c)
	}
	sb.WriteString(" ")
	sb.WriteString(t.Category)
	return strings.ToLower(sb.String())
}
