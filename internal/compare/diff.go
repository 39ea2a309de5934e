package compare

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/todmy/doc-comparer/pkg/models"
)

// Differ classifies the lines of two page texts as common, added, or removed
// using an LCS-based line alignment. It holds no per-call state and is safe
// for concurrent use.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffer creates a new line differ.
func NewDiffer() *Differ {
	dmp := diffmatchpatch.New()
	// No deadline: a timed-out diff degrades to a coarser edit script, which
	// would make the classification nondeterministic across runs.
	dmp.DiffTimeout = 0
	return &Differ{dmp: dmp}
}

// Diff compares linesA against linesB and returns the classified edit script
// in merged order. Within each gap, removed lines are emitted before added
// lines, and every line keeps its position relative to the lines around it.
func (d *Differ) Diff(linesA, linesB []string) []models.DiffLine {
	charsA, charsB, lineArray := d.dmp.DiffLinesToChars(joinLines(linesA), joinLines(linesB))
	diffs := d.dmp.DiffMain(charsA, charsB, false)
	diffs = d.dmp.DiffCharsToLines(diffs, lineArray)

	out := make([]models.DiffLine, 0, len(linesA)+len(linesB))
	for _, df := range diffs {
		kind := diffKind(df.Type)
		for _, line := range splitLines(df.Text) {
			out = append(out, models.DiffLine{Kind: kind, Content: line})
		}
	}
	return out
}

func diffKind(op diffmatchpatch.Operation) models.DiffKind {
	switch op {
	case diffmatchpatch.DiffDelete:
		return models.DiffRemoved
	case diffmatchpatch.DiffInsert:
		return models.DiffAdded
	default:
		return models.DiffCommon
	}
}

// joinLines terminates every line with a newline so that an empty line
// remains a token. A nil or empty slice joins to the empty string, which
// carries no lines at all.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
