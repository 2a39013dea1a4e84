package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/metrics"
	"github.com/toolscout/toolscout/internal/store"
)

type ToolsHandler struct {
	catalog *catalog.Catalog
	store   store.Store
	events  events.Client
}

func NewToolsHandler(c *catalog.Catalog, s store.Store, ev events.Client) *ToolsHandler {
	return &ToolsHandler{catalog: c, store: s, events: ev}
}

// List handles GET /api/v1/tools with an optional ?category= filter.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	tools := h.catalog.Tools()
	if cat := r.URL.Query().Get("category"); cat != "" {
		tools = h.catalog.ByCategory(cat)
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, tools)
}

// Get handles GET /api/v1/tools/{slug}.
func (h *ToolsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tool := h.catalog.Get(chi.URLParam(r, "slug"))
	if tool == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "tool not found"})
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// Redirect handles GET /go/{slug}: record the click, then send the visitor to
// the affiliate URL. Click bookkeeping is best-effort; the redirect happens
// even when the store write fails.
func (h *ToolsHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	tool := h.catalog.Get(slug)
	if tool == nil || tool.AffiliateURL == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no affiliate link for tool"})
		return
	}

	click := &store.ClickEvent{
		ToolSlug: slug,
		Source:   r.URL.Query().Get("src"),
		Referrer: r.Referer(),
	}
	if err := h.store.CreateClick(r.Context(), click); err == nil {
		metrics.AffiliateClicksTotal.WithLabelValues(slug).Inc()
		if h.events != nil {
			ev := events.AffiliateClickEvent{
				ClickID:  click.ID.String(),
				ToolSlug: slug,
				Source:   click.Source,
				Referrer: click.Referrer,
			}
			if err := h.events.Publish(events.SubjectAffiliateClick(slug), ev); err != nil {
				metrics.EventPublishFailures.Inc()
			}
		}
	}

	http.Redirect(w, r, tool.AffiliateURL, http.StatusFound)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
