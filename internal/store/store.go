package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuizSubmission records one scored quiz for later content analytics.
type QuizSubmission struct {
	ID              uuid.UUID      `json:"id"`
	Answers         []int          `json:"answers"`
	Dimensions      map[string]int `json:"dimensions"`
	TopDimensions   []string       `json:"top_dimensions"`
	Recommendations []string       `json:"recommendations"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ClickEvent records one affiliate redirect.
type ClickEvent struct {
	ID        uuid.UUID `json:"id"`
	ToolSlug  string    `json:"tool_slug"`
	Source    string    `json:"source,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClickFilter narrows click listings.
type ClickFilter struct {
	ToolSlug string
	Since    *time.Time
	Limit    int
	Offset   int
}

// Stats aggregates site activity for the admin endpoint and the digest loop.
type Stats struct {
	TotalSubmissions int64            `json:"total_submissions"`
	TotalClicks      int64            `json:"total_clicks"`
	ClicksByTool     map[string]int64 `json:"clicks_by_tool"`
	TopDimensions    map[string]int64 `json:"top_dimension_counts"`
}

// Store is the persistence boundary for submissions and click tracking.
type Store interface {
	CreateSubmission(ctx context.Context, s *QuizSubmission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*QuizSubmission, error)
	CreateClick(ctx context.Context, c *ClickEvent) error
	ListClicks(ctx context.Context, filter ClickFilter) ([]*ClickEvent, error)
	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}
