package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateSubmission(ctx context.Context, sub *QuizSubmission) error {
	dimsJSON, _ := json.Marshal(sub.Dimensions)

	return s.pool.QueryRow(ctx, `
		INSERT INTO quiz_submissions (answers, dimensions, top_dimensions, recommendations)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		sub.Answers, dimsJSON, sub.TopDimensions, sub.Recommendations,
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id uuid.UUID) (*QuizSubmission, error) {
	sub := &QuizSubmission{}
	var dimsJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, answers, dimensions, top_dimensions, recommendations, created_at
		FROM quiz_submissions WHERE id = $1`, id,
	).Scan(&sub.ID, &sub.Answers, &dimsJSON, &sub.TopDimensions, &sub.Recommendations, &sub.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if dimsJSON != nil {
		_ = json.Unmarshal(dimsJSON, &sub.Dimensions)
	}
	return sub, nil
}

func (s *PostgresStore) CreateClick(ctx context.Context, c *ClickEvent) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO affiliate_clicks (tool_slug, source, referrer)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		c.ToolSlug, c.Source, c.Referrer,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *PostgresStore) ListClicks(ctx context.Context, filter ClickFilter) ([]*ClickEvent, error) {
	query := `SELECT id, tool_slug, source, referrer, created_at FROM affiliate_clicks WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.ToolSlug != "" {
		n++
		query += fmt.Sprintf(" AND tool_slug = $%d", n)
		args = append(args, filter.ToolSlug)
	}
	if filter.Since != nil {
		n++
		query += fmt.Sprintf(" AND created_at >= $%d", n)
		args = append(args, *filter.Since)
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ClickEvent
	for rows.Next() {
		c := &ClickEvent{}
		if err := rows.Scan(&c.ID, &c.ToolSlug, &c.Source, &c.Referrer, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ClicksByTool:  make(map[string]int64),
		TopDimensions: make(map[string]int64),
	}

	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_submissions`,
	).Scan(&stats.TotalSubmissions); err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM affiliate_clicks`,
	).Scan(&stats.TotalClicks); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT tool_slug, COUNT(*) FROM affiliate_clicks
		GROUP BY tool_slug ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var slug string
		var count int64
		if err := rows.Scan(&slug, &count); err != nil {
			return nil, err
		}
		stats.ClicksByTool[slug] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// top_dimensions[1] is the user's strongest dimension.
	dimRows, err := s.pool.Query(ctx, `
		SELECT top_dimensions[1], COUNT(*) FROM quiz_submissions
		WHERE array_length(top_dimensions, 1) > 0
		GROUP BY top_dimensions[1]`)
	if err != nil {
		return nil, err
	}
	defer dimRows.Close()
	for dimRows.Next() {
		var dim string
		var count int64
		if err := dimRows.Scan(&dim, &count); err != nil {
			return nil, err
		}
		stats.TopDimensions[dim] = count
	}
	return stats, dimRows.Err()
}
