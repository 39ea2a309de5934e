package compare

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/todmy/doc-comparer/pkg/models"
)

// Score reduces aligned pages to a single percentage: the share of compared
// lines classified as common, across all pages. Page-only entries are not
// compared lines and are excluded from the count. With no compared lines at
// all the score is 0.
//
// The formula is a crude line-level precision metric, kept exactly as-is:
// consumers compare scores across runs and rely on it not changing.
func Score(pages []models.PageComparison) float64 {
	var total, common int
	for _, page := range pages {
		t, c := countLines(page)
		total += t
		common += c
	}
	if total == 0 {
		return 0
	}
	return float64(common) / float64(total) * 100
}

// PageScores applies the same formula to each page in isolation. Pages with
// no compared lines (including page-only positions) score 0.
func PageScores(pages []models.PageComparison) []float64 {
	scores := make([]float64, len(pages))
	for i, page := range pages {
		total, common := countLines(page)
		if total > 0 {
			scores[i] = float64(common) / float64(total) * 100
		}
	}
	return scores
}

func countLines(page models.PageComparison) (total, common int) {
	for _, d := range page.Differences {
		switch d.Kind {
		case models.DiffCommon:
			total++
			common++
		case models.DiffAdded, models.DiffRemoved:
			total++
		}
	}
	return total, common
}

// ScoreSummary aggregates per-page scores for presentation.
type ScoreSummary struct {
	Mean float64
	Min  float64
	Max  float64
}

// SummarizeScores computes mean, min, and max over per-page scores. An empty
// input yields the zero summary.
func SummarizeScores(scores []float64) ScoreSummary {
	if len(scores) == 0 {
		return ScoreSummary{}
	}
	return ScoreSummary{
		Mean: stat.Mean(scores, nil),
		Min:  floats.Min(scores),
		Max:  floats.Max(scores),
	}
}
