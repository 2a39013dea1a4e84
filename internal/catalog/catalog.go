package catalog

// Tool is one reviewed product in the catalog. Records are read-only for the
// lifetime of the process; iteration order is the catalog file order and is
// observable as the tie-break in recommendation sorts.
type Tool struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Blurb        string   `json:"blurb"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	Badges       []string `json:"badges,omitempty"`
	PricingNote  string   `json:"pricing_note"`
	AffiliateURL string   `json:"affiliate_url,omitempty"`
}

// Catalog is the ordered tool list supplied to the recommendation engine.
type Catalog struct {
	tools  []Tool
	bySlug map[string]*Tool
}

// New builds a catalog from an ordered tool list.
func New(tools []Tool) *Catalog {
	c := &Catalog{tools: tools, bySlug: make(map[string]*Tool, len(tools))}
	for i := range c.tools {
		c.bySlug[c.tools[i].Slug] = &c.tools[i]
	}
	return c
}

// Tools returns the full ordered list.
func (c *Catalog) Tools() []Tool {
	return c.tools
}

// ByCategory returns tools whose category matches exactly, in catalog order.
func (c *Catalog) ByCategory(category string) []Tool {
	var out []Tool
	for _, t := range c.tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the tool for a slug, or nil if unknown.
func (c *Catalog) Get(slug string) *Tool {
	return c.bySlug[slug]
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}
