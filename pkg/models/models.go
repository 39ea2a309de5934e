package models

import (
	"time"
)

// DiffKind classifies a single entry in a page comparison.
type DiffKind string

const (
	// DiffCommon marks a line present, identically, in both documents.
	DiffCommon DiffKind = "common"
	// DiffAdded marks a line present only in document B.
	DiffAdded DiffKind = "added"
	// DiffRemoved marks a line present only in document A.
	DiffRemoved DiffKind = "removed"
	// DiffPageOnlyA marks a whole page that exists only in document A.
	DiffPageOnlyA DiffKind = "page_only_in_a"
	// DiffPageOnlyB marks a whole page that exists only in document B.
	DiffPageOnlyB DiffKind = "page_only_in_b"
)

// DiffLine is one classified entry of a page diff. For the page-only kinds,
// Content holds the full page text rather than a single line.
type DiffLine struct {
	Kind    DiffKind `json:"kind"`
	Content string   `json:"content"`
}

// PageComparison holds the classified differences for one page position.
// Page numbers are 1-based and contiguous.
type PageComparison struct {
	PageNumber  int        `json:"page_number"`
	Differences []DiffLine `json:"differences"`
}

// MetadataEntry records one metadata key whose values differ between the two
// documents. A nil value means the key is absent on that side, which is
// distinct from an empty string.
type MetadataEntry struct {
	Key    string  `json:"key"`
	ValueA *string `json:"value_a"`
	ValueB *string `json:"value_b"`
}

// ComparisonResult is the full outcome of comparing two documents. It is
// assembled once per comparison and never mutated after being stored.
type ComparisonResult struct {
	ID              string           `json:"id"`
	PageCountA      int              `json:"page_count_a"`
	PageCountB      int              `json:"page_count_b"`
	Pages           []PageComparison `json:"pages"`
	MetadataDiff    []MetadataEntry  `json:"metadata_diff"`
	SimilarityScore float64          `json:"similarity_score"`
	CreatedAt       time.Time        `json:"created_at"`
}
