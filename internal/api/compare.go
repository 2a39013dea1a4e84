package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/toolscout/toolscout/internal/compare"
	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/metrics"
)

type CompareHandler struct {
	registry *compare.Registry
	events   events.Client
}

func NewCompareHandler(reg *compare.Registry, ev events.Client) *CompareHandler {
	return &CompareHandler{registry: reg, events: ev}
}

// Resolve handles GET /api/v1/compare/{slug}. An alias gets a permanent
// redirect to its canonical path; an unknown comparison is a 404 with
// best-effort suggestions, not an error.
func (h *CompareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "slug")
	res := h.registry.Resolve(input)
	metrics.CompareResolutionsTotal.WithLabelValues(string(res.Type)).Inc()

	switch res.Type {
	case compare.OutcomeMatch:
		writeJSON(w, http.StatusOK, h.registry.Get(res.Target))

	case compare.OutcomeRedirect:
		w.Header().Set("Location", "/api/v1/compare/"+res.Target)
		writeJSON(w, http.StatusMovedPermanently, res)

	default:
		if h.events != nil {
			ev := events.CompareMissEvent{
				Requested:   compare.NormalizeSlug(input),
				Suggestions: res.Suggestions,
			}
			if err := h.events.Publish(events.SubjectCompareMiss(), ev); err != nil {
				metrics.EventPublishFailures.Inc()
			}
		}
		writeJSON(w, http.StatusNotFound, res)
	}
}
