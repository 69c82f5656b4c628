package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type handler struct {
	dashboard service.DashboardService
	exports   service.ExportService
	filters   service.SavedFilterService
	dark      bool
}

// requestFilters resolves the effective filters of a request: the saved
// filter named by ?saved=, or the defaults, overlaid with facet parameters.
func (h *handler) requestFilters(r *http.Request) (domain.Filters, error) {
	base := domain.DefaultFilters()
	if ref := r.URL.Query().Get("saved"); ref != "" {
		sf, err := h.filters.Get(r.Context(), ref)
		if err != nil {
			return domain.Filters{}, err
		}
		base = sf.Filters
	}
	return parseFacets(r, base)
}

func (h *handler) viewRequest(r *http.Request) (service.ViewRequest, error) {
	id, err := insight.ParseViewID(chi.URLParam(r, "view"))
	if err != nil {
		return service.ViewRequest{}, err
	}
	f, err := h.requestFilters(r)
	if err != nil {
		return service.ViewRequest{}, err
	}
	dark, err := parseTheme(r, h.dark)
	if err != nil {
		return service.ViewRequest{}, err
	}
	return service.ViewRequest{View: id, Filters: f, Dark: dark}, nil
}

func (h *handler) ListViews(w http.ResponseWriter, r *http.Request) {
	out := make([]viewSummary, 0, len(insight.Views))
	for _, id := range insight.Views {
		out = append(out, viewSummary{ID: id, Title: insight.Title(id)})
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *handler) GetView(w http.ResponseWriter, r *http.Request) {
	req, err := h.viewRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recs, err := h.dashboard.Filtered(r.Context(), req.Filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.dashboard.View(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, viewResponse{
		ID:      view.ID,
		Title:   view.Title,
		Count:   len(recs),
		Filters: req.Filters,
		Series:  view.Series,
		Table:   view.Table,
	})
}

func (h *handler) ExportView(w http.ResponseWriter, r *http.Request) {
	req, err := h.viewRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := h.exports.Export(r.Context(), req, format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", d.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(d.Content); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write export")
	}
}

func (h *handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	f, err := h.requestFilters(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recs, err := h.dashboard.Filtered(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	list, err := h.filters.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (h *handler) GetFilter(w http.ResponseWriter, r *http.Request) {
	sf, err := h.filters.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sf)
}

// SaveFilter stores the body's filters, or the query's facets when the body
// carries none.
func (h *handler) SaveFilter(w http.ResponseWriter, r *http.Request) {
	var body saveFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, badQuery("invalid body: %v", err))
		return
	}
	var f domain.Filters
	if body.Filters != nil {
		if err := checkFacets(*body.Filters); err != nil {
			writeError(w, r, err)
			return
		}
		f = body.Filters.Normalized()
	} else {
		var err error
		if f, err = h.requestFilters(r); err != nil {
			writeError(w, r, err)
			return
		}
	}
	sf, err := h.filters.Save(r.Context(), body.Name, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, sf)
}

func (h *handler) SetDefaultFilter(w http.ResponseWriter, r *http.Request) {
	if err := h.filters.SetDefault(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) DeleteFilter(w http.ResponseWriter, r *http.Request) {
	if err := h.filters.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	ev := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		ev = zerolog.Ctx(r.Context()).Error()
	}
	ev.Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var qe *queryError
	switch {
	case errors.As(err, &qe),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, service.ErrEmptyName):
		return http.StatusBadRequest
	case errors.Is(err, insight.ErrUnknownView),
		errors.Is(err, service.ErrFilterNotFound):
		return http.StatusNotFound
	case errors.Is(err, export.ErrSnapshotUnavailable):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
