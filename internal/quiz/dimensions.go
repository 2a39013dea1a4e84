package quiz

// Dimension is one of the fixed tool-category axes a quiz answer can score.
type Dimension string

const (
	DimWriting    Dimension = "writing"
	DimVideo      Dimension = "video"
	DimOutbound   Dimension = "outbound"
	DimData       Dimension = "data"
	DimCRM        Dimension = "crm"
	DimAutomation Dimension = "automation"
)

// AllDimensions lists every dimension in enumeration order. Tie-breaks in
// TopDimensions are stable over this order, so it must not be reordered.
var AllDimensions = []Dimension{
	DimWriting,
	DimVideo,
	DimOutbound,
	DimData,
	DimCRM,
	DimAutomation,
}

// Label returns the human-readable form used in match reasons.
func (d Dimension) Label() string {
	switch d {
	case DimWriting:
		return "Writing"
	case DimVideo:
		return "Video"
	case DimOutbound:
		return "Outbound"
	case DimData:
		return "Data"
	case DimCRM:
		return "CRM"
	case DimAutomation:
		return "Automation"
	default:
		return string(d)
	}
}

// dimensionCategories maps each dimension to the catalog categories it covers.
var dimensionCategories = map[Dimension][]string{
	DimWriting:    {"AI Writing", "Content", "SEO"},
	DimVideo:      {"AI Video", "Design"},
	DimOutbound:   {"Outbound", "Email Marketing", "Sales Engagement"},
	DimData:       {"Lead Generation", "Data Enrichment", "Analytics"},
	DimCRM:        {"CRM", "Sales"},
	DimAutomation: {"Automation", "Workflow"},
}

// dimensionKeywords drives the keyword-density bonus. Matched as lowercase
// substrings against the tool's text blob.
var dimensionKeywords = map[Dimension][]string{
	DimWriting:    {"writing", "content", "copy", "blog", "article", "seo"},
	DimVideo:      {"video", "avatar", "clip", "footage", "editing"},
	DimOutbound:   {"outreach", "email", "sequence", "cold", "reply", "campaign"},
	DimData:       {"data", "leads", "enrichment", "contacts", "database", "intent"},
	DimCRM:        {"crm", "pipeline", "deals", "sales", "relationship"},
	DimAutomation: {"automation", "workflow", "integrate", "zap", "no-code", "trigger"},
}

// dimensionBadges drives the badge bonus. Compared case-insensitively against
// the tool's badge labels.
var dimensionBadges = map[Dimension][]string{
	DimWriting:    {"Editor's Pick", "Best for Content"},
	DimVideo:      {"Best for Video"},
	DimOutbound:   {"Best for Outreach", "Top Deliverability"},
	DimData:       {"Best Database", "Most Accurate"},
	DimCRM:        {"Best for Teams"},
	DimAutomation: {"Most Integrations", "No-Code"},
}
