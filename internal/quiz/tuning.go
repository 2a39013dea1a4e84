package quiz

import "fmt"

// Tuning collects the scoring multipliers in one place so they can be adjusted
// from config without touching the algorithm.
type Tuning struct {
	// CategoryUnit is multiplied by the top-dimension rank weight (3/2/1).
	CategoryUnit float64
	// KeywordUnit is multiplied per keyword hit, scaled by dimension score.
	KeywordUnit float64
	// BadgeUnit is multiplied per badge hit, scaled by dimension score.
	BadgeUnit float64
	// PricingBonus is the flat bonus for a pricing-note match.
	PricingBonus float64
	// EnterpriseThreshold is the Data-dimension score above which the user is
	// treated as having enterprise budget.
	EnterpriseThreshold int
	// DisplayCeiling is the raw score treated as a 100% match for display.
	// Tuning parameter, not a derived value.
	DisplayCeiling float64
}

// DefaultTuning returns the production multipliers.
func DefaultTuning() Tuning {
	return Tuning{
		CategoryUnit:        30,
		KeywordUnit:         5,
		BadgeUnit:           10,
		PricingBonus:        10,
		EnterpriseThreshold: 70,
		DisplayCeiling:      200,
	}
}

// Validate checks that no multiplier is negative and the ceiling is usable.
func (t Tuning) Validate() error {
	for name, v := range map[string]float64{
		"category_unit": t.CategoryUnit,
		"keyword_unit":  t.KeywordUnit,
		"badge_unit":    t.BadgeUnit,
		"pricing_bonus": t.PricingBonus,
	} {
		if v < 0 {
			return fmt.Errorf("tuning: negative %s: %f", name, v)
		}
	}
	if t.DisplayCeiling <= 0 {
		return fmt.Errorf("tuning: display ceiling must be positive, got %f", t.DisplayCeiling)
	}
	return nil
}

// Boost is one hand-curated special-case bonus: a flat score bump for a named
// tool when a given dimension made the user's top three.
type Boost struct {
	ToolSlug     string
	TopDimension Dimension
	Bonus        float64
	Reason       string
}

// DefaultBoosts returns the curated boost table. These are editorial picks,
// not derived from catalog data.
func DefaultBoosts() []Boost {
	return []Boost{
		{ToolSlug: "apollo", TopDimension: DimData, Bonus: 25, Reason: "Top pick for data-driven prospecting"},
		{ToolSlug: "clay", TopDimension: DimData, Bonus: 20, Reason: "Best-in-class enrichment workflows"},
		{ToolSlug: "jasper", TopDimension: DimWriting, Bonus: 20, Reason: "Our highest-rated writing assistant"},
		{ToolSlug: "heygen", TopDimension: DimVideo, Bonus: 20, Reason: "Standout avatar video quality"},
		{ToolSlug: "instantly", TopDimension: DimOutbound, Bonus: 20, Reason: "Purpose-built for cold outbound at scale"},
	}
}
