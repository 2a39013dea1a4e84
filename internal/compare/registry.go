package compare

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Pair is one known comparison: a canonical slug plus the alias slugs that
// should resolve to it (typically the reversed "b-vs-a" form).
type Pair struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Registry is the read-only set of known comparisons, built once at startup.
type Registry struct {
	pairs       []Pair
	byCanonical map[string]int
	byAlias     map[string]int
}

// NewRegistry builds a registry and enforces resolution unambiguity: canonical
// slugs must be unique, and no alias may equal another pair's canonical slug.
// An alias equal to its own pair's canonical slug is redundant but harmless
// and is dropped.
func NewRegistry(pairs []Pair) (*Registry, error) {
	r := &Registry{
		pairs:       pairs,
		byCanonical: make(map[string]int, len(pairs)),
		byAlias:     make(map[string]int),
	}
	for i, p := range pairs {
		if p.Canonical == "" {
			return nil, fmt.Errorf("compare registry: pair %d has empty canonical slug", i)
		}
		if p.Canonical != NormalizeSlug(p.Canonical) {
			return nil, fmt.Errorf("compare registry: canonical %q is not normalized", p.Canonical)
		}
		if _, dup := r.byCanonical[p.Canonical]; dup {
			return nil, fmt.Errorf("compare registry: duplicate canonical %q", p.Canonical)
		}
		r.byCanonical[p.Canonical] = i
	}
	for i, p := range pairs {
		for _, a := range p.Aliases {
			if a == p.Canonical {
				continue
			}
			if other, clash := r.byCanonical[a]; clash {
				return nil, fmt.Errorf("compare registry: alias %q of %q shadows canonical of %q",
					a, p.Canonical, pairs[other].Canonical)
			}
			if prev, dup := r.byAlias[a]; dup && prev != i {
				return nil, fmt.Errorf("compare registry: alias %q claimed by both %q and %q",
					a, pairs[prev].Canonical, p.Canonical)
			}
			r.byAlias[a] = i
		}
	}
	return r, nil
}

// Pairs returns the registry contents in load order.
func (r *Registry) Pairs() []Pair {
	return r.pairs
}

// Get returns the pair for a canonical slug, or nil.
func (r *Registry) Get(canonical string) *Pair {
	if i, ok := r.byCanonical[canonical]; ok {
		return &r.pairs[i]
	}
	return nil
}

// LoadRegistry reads a JSON pair list from path. A missing or unreadable file
// degrades to an empty registry with a warning; a file that parses but fails
// validation is a hard error.
func LoadRegistry(path string, logger *slog.Logger) (*Registry, error) {
	if path == "" {
		return NewRegistry(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("compare registry unavailable, serving empty registry", "path", path, "error", err)
		return NewRegistry(nil)
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse compare registry %s: %w", path, err)
	}
	return NewRegistry(pairs)
}
