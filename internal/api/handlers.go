package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todmy/doc-comparer/internal/compare"
	"github.com/todmy/doc-comparer/internal/store"
	"github.com/todmy/doc-comparer/pkg/models"
)

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex serves the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

// pageView pairs a page comparison with its presentation extras.
type pageView struct {
	models.PageComparison
	Score    float64
	OnlySide string
}

// resultsView is the template data for the results page.
type resultsView struct {
	Result  *models.ComparisonResult
	Pages   []pageView
	Summary compare.ScoreSummary
}

// handleResults renders the HTML report for a stored comparison.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "comparisonID")

	result, err := s.comparer.GetResult(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "comparison results not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load comparison", http.StatusInternalServerError)
		return
	}

	scores := compare.PageScores(result.Pages)
	pages := make([]pageView, len(result.Pages))
	for i, page := range result.Pages {
		pages[i] = pageView{
			PageComparison: page,
			Score:          scores[i],
			OnlySide:       onlySide(page),
		}
	}

	s.render(w, "results.html", resultsView{
		Result:  result,
		Pages:   pages,
		Summary: compare.SummarizeScores(scores),
	})
}

// handleGetComparison returns the stored comparison as JSON.
func (s *Server) handleGetComparison(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "comparisonID")

	result, err := s.comparer.GetResult(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "comparison results not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load comparison")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

func onlySide(page models.PageComparison) string {
	if len(page.Differences) != 1 {
		return ""
	}
	switch page.Differences[0].Kind {
	case models.DiffPageOnlyA:
		return "A"
	case models.DiffPageOnlyB:
		return "B"
	}
	return ""
}
