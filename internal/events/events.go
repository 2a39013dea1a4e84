package events

import "time"

type QuizScoredEvent struct {
	SubmissionID  string         `json:"submission_id"`
	Dimensions    map[string]int `json:"dimensions"`
	TopDimensions []string       `json:"top_dimensions"`
	Recommended   []string       `json:"recommended,omitempty"`
}

type AffiliateClickEvent struct {
	ClickID  string `json:"click_id"`
	ToolSlug string `json:"tool_slug"`
	Source   string `json:"source,omitempty"`
	Referrer string `json:"referrer,omitempty"`
}

// CompareMissEvent is published when a visitor asks for a comparison the
// registry doesn't know. Editorial signal for which pages to write next.
type CompareMissEvent struct {
	Requested   string   `json:"requested"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type StatsEvent struct {
	TotalSubmissions int64            `json:"total_submissions"`
	TotalClicks      int64            `json:"total_clicks"`
	ClicksByTool     map[string]int64 `json:"clicks_by_tool,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
}
