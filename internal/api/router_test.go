package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/compare"
	"github.com/toolscout/toolscout/internal/quiz"
	"github.com/toolscout/toolscout/internal/store"
)

// Mocks

type mockStore struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*store.QuizSubmission
	clicks      []*store.ClickEvent
}

func newMockStore() *mockStore {
	return &mockStore{submissions: make(map[uuid.UUID]*store.QuizSubmission)}
}

func (m *mockStore) CreateSubmission(_ context.Context, s *store.QuizSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.submissions[s.ID] = s
	return nil
}

func (m *mockStore) GetSubmission(_ context.Context, id uuid.UUID) (*store.QuizSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions[id], nil
}

func (m *mockStore) CreateClick(_ context.Context, c *store.ClickEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	m.clicks = append(m.clicks, c)
	return nil
}

func (m *mockStore) ListClicks(_ context.Context, _ store.ClickFilter) ([]*store.ClickEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clicks, nil
}

func (m *mockStore) GetStats(_ context.Context) (*store.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &store.Stats{
		TotalSubmissions: int64(len(m.submissions)),
		TotalClicks:      int64(len(m.clicks)),
		ClicksByTool:     map[string]int64{},
		TopDimensions:    map[string]int64{},
	}, nil
}

func (m *mockStore) Close() error { return nil }

type mockEvents struct {
	mu       sync.Mutex
	subjects []string
}

func (m *mockEvents) Publish(subject string, _ interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockEvents) Close() {}

func (m *mockEvents) published() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.subjects...)
}

// Fixtures

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Tool{
		{Slug: "jasper", Name: "Jasper", Category: "AI Writing",
			Blurb: "AI writing assistant for content and blog articles",
			Pros:  []string{"fast drafts"}, PricingNote: "free trial",
			AffiliateURL: "https://example.com/go/jasper"},
		{Slug: "apollo", Name: "Apollo", Category: "Lead Generation",
			Blurb: "B2B contacts database with intent data", PricingNote: "free tier",
			AffiliateURL: "https://example.com/go/apollo"},
		{Slug: "nolink", Name: "NoLink", Category: "CRM", Blurb: "pipeline tracker", PricingNote: "paid"},
	})
}

func testCompareRegistry(t *testing.T) *compare.Registry {
	t.Helper()
	r, err := compare.NewRegistry([]compare.Pair{
		{Canonical: "apollo-vs-zoominfo", Aliases: []string{"zoominfo-vs-apollo"}},
		{Canonical: "jasper-vs-copy-ai"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func testQuizEngine() *quiz.Engine {
	return quiz.NewEngine(quiz.DefaultBank(), quiz.DefaultTuning(), quiz.DefaultBoosts())
}

func newTestRouter(t *testing.T, s store.Store, ev *mockEvents) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(testQuizEngine(), testCatalog(), testCompareRegistry(t), s, ev, "admin-token", logger)
}

// Tests

func TestQuizQuestions(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quiz/questions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var bank quiz.Bank
	if err := json.NewDecoder(rec.Body).Decode(&bank); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(bank) != len(quiz.DefaultBank()) {
		t.Errorf("expected %d questions, got %d", len(quiz.DefaultBank()), len(bank))
	}
}

func TestQuizScore(t *testing.T) {
	ms := newMockStore()
	ev := &mockEvents{}
	router := newTestRouter(t, ms, ev)

	answers := make([]int, len(quiz.DefaultBank()))
	body, _ := json.Marshal(ScoreRequest{Answers: answers})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/score", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ScoreResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.TopDimensions) != 3 {
		t.Errorf("expected 3 top dimensions, got %d", len(resp.TopDimensions))
	}
	if resp.SubmissionID == "" {
		t.Error("expected a submission id")
	}
	if len(ms.submissions) != 1 {
		t.Errorf("expected persisted submission, got %d", len(ms.submissions))
	}
	if len(ev.published()) != 1 {
		t.Errorf("expected one published event, got %d", len(ev.published()))
	}
	for _, score := range resp.Dimensions {
		if score < 0 || score > 100 {
			t.Errorf("dimension score %d out of range", score)
		}
	}
}

func TestQuizScoreRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"answers": `, http.StatusBadRequest},
		{"wrong length", `{"answers":[0]}`, http.StatusUnprocessableEntity},
		{"negative index", `{"answers":[-1,0,0,0,0]}`, http.StatusUnprocessableEntity},
		{"index out of range", `{"answers":[99,0,0,0,0]}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/score", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestToolsListAndGet(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var tools []catalog.Tool
	if err := json.NewDecoder(rec.Body).Decode(&tools); err != nil {
		t.Fatal(err)
	}
	if len(tools) != 3 {
		t.Errorf("expected 3 tools, got %d", len(tools))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tools?category=CRM", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	tools = nil
	_ = json.NewDecoder(rec.Body).Decode(&tools)
	if len(tools) != 1 || tools[0].Slug != "nolink" {
		t.Errorf("category filter failed: %+v", tools)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tools/jasper", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for known tool, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tools/ghost", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown tool, got %d", rec.Code)
	}
}

func TestAffiliateRedirect(t *testing.T) {
	ms := newMockStore()
	ev := &mockEvents{}
	router := newTestRouter(t, ms, ev)

	req := httptest.NewRequest(http.MethodGet, "/go/jasper?src=quiz", nil)
	req.Header.Set("Referer", "https://toolscout.example/quiz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://example.com/go/jasper" {
		t.Errorf("unexpected redirect target %q", loc)
	}
	if len(ms.clicks) != 1 {
		t.Fatalf("expected recorded click, got %d", len(ms.clicks))
	}
	if ms.clicks[0].Source != "quiz" {
		t.Errorf("expected click source 'quiz', got %q", ms.clicks[0].Source)
	}
	if len(ev.published()) != 1 {
		t.Errorf("expected click event published, got %d", len(ev.published()))
	}
}

func TestAffiliateRedirectUnknownTool(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	for _, slug := range []string{"ghost", "nolink"} {
		req := httptest.NewRequest(http.MethodGet, "/go/"+slug, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("slug %s: expected 404, got %d", slug, rec.Code)
		}
	}
}

func TestAdminStatsAuth(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", rec.Code)
	}
	var stats store.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewMetricsRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
