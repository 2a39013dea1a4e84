package compare

import "strings"

// Outcome classifies a resolution result.
type Outcome string

const (
	// OutcomeMatch means the input is itself a canonical slug.
	OutcomeMatch Outcome = "match"
	// OutcomeRedirect means the input is an alias; callers should redirect to
	// Target with a permanent redirect.
	OutcomeRedirect Outcome = "redirect"
	// OutcomeUnknown means no pair matched; Suggestions carries up to
	// maxSuggestions best-effort alternatives. This is a normal outcome, a
	// 404 for the caller, never an internal error.
	OutcomeUnknown Outcome = "unknown"
)

const maxSuggestions = 5

// Resolution is the terminal outcome of resolving one input.
type Resolution struct {
	Type        Outcome  `json:"type"`
	Target      string   `json:"target,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Resolve normalizes input and resolves it against the registry. Canonical
// slugs win over aliases: an input that is both a canonical slug of one pair
// and an alias of another resolves as a match (the registry validator rejects
// that shape anyway).
func (r *Registry) Resolve(input string) Resolution {
	slug := NormalizeSlug(input)

	if _, ok := r.byCanonical[slug]; ok {
		return Resolution{Type: OutcomeMatch, Target: slug}
	}
	if i, ok := r.byAlias[slug]; ok {
		return Resolution{Type: OutcomeRedirect, Target: r.pairs[i].Canonical}
	}
	return Resolution{Type: OutcomeUnknown, Suggestions: r.suggest(slug)}
}

// suggest collects canonical slugs sharing either tool token with the input.
func (r *Registry) suggest(slug string) []string {
	left, right, ok := SplitPair(slug)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range r.pairs {
		a, b, ok := SplitPair(p.Canonical)
		if !ok {
			continue
		}
		if a == left || b == left || a == right || b == right {
			out = append(out, p.Canonical)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// CanonicalCompareSlug is the looser resolution path used by call sites that
// only lowercase and trim their input. It deliberately does not apply
// NormalizeSlug's hyphen collapsing; the two behaviors stay separate until
// product intent says otherwise. Unknown slugs pass through unchanged.
func (r *Registry) CanonicalCompareSlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	if _, ok := r.byCanonical[s]; ok {
		return s
	}
	if i, ok := r.byAlias[s]; ok {
		return r.pairs[i].Canonical
	}
	return s
}
