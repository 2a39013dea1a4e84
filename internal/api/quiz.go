package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/metrics"
	"github.com/toolscout/toolscout/internal/quiz"
	"github.com/toolscout/toolscout/internal/store"
)

type QuizHandler struct {
	engine  *quiz.Engine
	catalog *catalog.Catalog
	store   store.Store
	events  events.Client
}

func NewQuizHandler(e *quiz.Engine, c *catalog.Catalog, s store.Store, ev events.Client) *QuizHandler {
	return &QuizHandler{engine: e, catalog: c, store: s, events: ev}
}

type ScoreRequest struct {
	Answers []int `json:"answers"`
}

type ScoreResponse struct {
	SubmissionID    string                 `json:"submission_id,omitempty"`
	Dimensions      map[quiz.Dimension]int `json:"dimensions"`
	TopDimensions   []quiz.Dimension       `json:"top_dimensions"`
	Recommendations []quiz.Recommendation  `json:"recommendations"`
}

// Questions handles GET /api/v1/quiz/questions.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Bank())
}

// Score handles POST /api/v1/quiz/score. The engine treats answer indices as
// a caller contract, so this is where that contract gets enforced against
// untrusted input.
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	bank := h.engine.Bank()
	if len(req.Answers) != len(bank) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("expected %d answers, got %d", len(bank), len(req.Answers)),
		})
		return
	}
	for i, a := range req.Answers {
		if a < 0 || a >= len(bank[i].Answers) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": fmt.Sprintf("answer %d out of range for question %q", a, bank[i].ID),
			})
			return
		}
	}

	result := h.engine.CalculateResults(req.Answers)
	recs := h.engine.RecommendTools(result, h.catalog)
	metrics.QuizScoredTotal.Inc()

	resp := ScoreResponse{
		Dimensions:      result.Dimensions,
		TopDimensions:   result.TopDimensions,
		Recommendations: recs,
	}

	dims := make(map[string]int, len(result.Dimensions))
	for d, v := range result.Dimensions {
		dims[string(d)] = v
	}
	tops := make([]string, len(result.TopDimensions))
	for i, d := range result.TopDimensions {
		tops[i] = string(d)
	}
	recSlugs := make([]string, len(recs))
	for i, rec := range recs {
		recSlugs[i] = rec.Slug
	}

	sub := &store.QuizSubmission{
		Answers:         req.Answers,
		Dimensions:      dims,
		TopDimensions:   tops,
		Recommendations: recSlugs,
	}
	if err := h.store.CreateSubmission(r.Context(), sub); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	resp.SubmissionID = sub.ID.String()

	if h.events != nil {
		ev := events.QuizScoredEvent{
			SubmissionID:  sub.ID.String(),
			Dimensions:    dims,
			TopDimensions: tops,
			Recommended:   recSlugs,
		}
		if err := h.events.Publish(events.SubjectQuizScored(sub.ID.String()), ev); err != nil {
			metrics.EventPublishFailures.Inc()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
