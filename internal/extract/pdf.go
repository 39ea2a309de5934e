package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// ExtractionError wraps a failure from the PDF backend. The comparison
// engine never produces one; it only sees extraction output or nothing.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Document is the extraction output the comparison engine consumes: ordered
// normalized page texts plus the flat Info-dictionary metadata.
type Document struct {
	Pages    []string
	Metadata map[string]string
}

// Extractor yields per-page text and metadata for a document file.
type Extractor interface {
	Extract(path string) (*Document, error)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText collapses every run of whitespace to a single space and trims
// the ends. Page texts are normalized this way before any comparison sees
// them, so layout and line-wrap differences between renderers wash out.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// PDFExtractor reads page text and Info metadata using github.com/ledongthuc/pdf.
type PDFExtractor struct {
	logger zerolog.Logger
}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor(logger zerolog.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Extract opens the PDF at path and returns its normalized page texts and
// metadata. Any backend failure comes back as an *ExtractionError; no partial
// document is returned.
func (x *PDFExtractor) Extract(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	doc := &Document{
		Pages:    make([]string, 0, reader.NumPage()),
		Metadata: infoMetadata(reader),
	}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ExtractionError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		doc.Pages = append(doc.Pages, NormalizeText(text))
	}

	x.logger.Debug().
		Str("file", filepath.Base(path)).
		Int("pages", len(doc.Pages)).
		Int("metadata_keys", len(doc.Metadata)).
		Msg("extracted document")
	return doc, nil
}

// infoMetadata flattens the trailer's Info dictionary into strings. Keys are
// kept as written in the file; casing is not normalized.
func infoMetadata(reader *pdf.Reader) map[string]string {
	meta := make(map[string]string)
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}
	for _, k := range info.Keys() {
		v := info.Key(k)
		switch v.Kind() {
		case pdf.String:
			meta[k] = v.Text()
		case pdf.Name:
			meta[k] = v.Name()
		case pdf.Integer:
			meta[k] = strconv.FormatInt(v.Int64(), 10)
		case pdf.Real:
			meta[k] = strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		case pdf.Bool:
			meta[k] = strconv.FormatBool(v.Bool())
		}
	}
	return meta
}
