package compare

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/todmy/doc-comparer/pkg/models"
)

// ResultStore keeps finished comparison results for later retrieval. Put
// assigns the result its identifier and must be safe under concurrent use;
// each identifier is written exactly once.
type ResultStore interface {
	Put(result *models.ComparisonResult) string
	Get(id string) (*models.ComparisonResult, error)
}

// Service is the comparison entry point: it aligns the two documents' pages,
// diffs the paired pages, compares metadata, scores the whole, and stores the
// assembled result. Each call works only on its own inputs, so concurrent
// comparisons never interfere.
type Service struct {
	aligner *Aligner
	store   ResultStore
	logger  zerolog.Logger
}

// NewService creates a comparison service backed by the given store.
func NewService(store ResultStore, logger zerolog.Logger) *Service {
	return &Service{
		aligner: NewAligner(NewDiffer()),
		store:   store,
		logger:  logger,
	}
}

// Compare runs the full pipeline over already-extracted page texts and
// metadata. Either a complete result is stored and returned, or nothing is
// stored and an error comes back; partial results never escape.
//
// Metadata comparison is independent of page alignment: an empty or nil
// metadata mapping on either side does not block the page diff.
func (s *Service) Compare(pagesA []string, metaA map[string]string, pagesB []string, metaB map[string]string) (*models.ComparisonResult, error) {
	if pagesA == nil {
		return nil, &ValidationError{Field: "document A", Reason: "missing page sequence"}
	}
	if pagesB == nil {
		return nil, &ValidationError{Field: "document B", Reason: "missing page sequence"}
	}

	pages := s.aligner.Align(pagesA, pagesB)

	result := &models.ComparisonResult{
		PageCountA:      len(pagesA),
		PageCountB:      len(pagesB),
		Pages:           pages,
		MetadataDiff:    CompareMetadata(metaA, metaB),
		SimilarityScore: Score(pages),
		CreatedAt:       time.Now(),
	}

	id := s.store.Put(result)
	s.logger.Info().
		Str("comparison_id", id).
		Int("pages_a", result.PageCountA).
		Int("pages_b", result.PageCountB).
		Float64("similarity", result.SimilarityScore).
		Msg("comparison stored")
	return result, nil
}

// GetResult retrieves a previously stored comparison by its identifier.
func (s *Service) GetResult(id string) (*models.ComparisonResult, error) {
	return s.store.Get(id)
}
