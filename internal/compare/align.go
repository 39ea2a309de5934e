package compare

import (
	"strings"

	"github.com/todmy/doc-comparer/pkg/models"
)

// Aligner pairs two documents' pages by position: index i of document A is
// always compared against index i of document B. Pages are never re-matched
// by content, so a page inserted in one document shifts every later pairing.
// That is a deliberate scope limit carried over from the original behavior;
// consumers depend on the resulting shape.
type Aligner struct {
	differ *Differ
}

// NewAligner creates an aligner that diffs paired pages with the given differ.
func NewAligner(differ *Differ) *Aligner {
	return &Aligner{differ: differ}
}

// Align produces one PageComparison per page position, covering
// max(len(pagesA), len(pagesB)) positions with 1-based page numbers. Positions
// past the shorter document yield a single page-only entry holding the full
// page text of whichever side still has a page there.
func (a *Aligner) Align(pagesA, pagesB []string) []models.PageComparison {
	n := len(pagesA)
	if len(pagesB) > n {
		n = len(pagesB)
	}

	pages := make([]models.PageComparison, 0, n)
	for i := 0; i < n; i++ {
		pc := models.PageComparison{PageNumber: i + 1}
		switch {
		case i < len(pagesA) && i < len(pagesB):
			pc.Differences = a.differ.Diff(
				strings.Split(pagesA[i], "\n"),
				strings.Split(pagesB[i], "\n"),
			)
		case i < len(pagesA):
			pc.Differences = []models.DiffLine{{Kind: models.DiffPageOnlyA, Content: pagesA[i]}}
		default:
			pc.Differences = []models.DiffLine{{Kind: models.DiffPageOnlyB, Content: pagesB[i]}}
		}
		pages = append(pages, pc)
	}
	return pages
}
