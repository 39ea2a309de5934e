package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/todmy/doc-comparer/internal/compare"
	"github.com/todmy/doc-comparer/internal/extract"
)

// handleCompare accepts two PDF uploads, extracts their text and metadata,
// runs the comparison, and redirects to the results page. The uploaded files
// only live on disk for the duration of the request.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	docA, err := s.receiveDocument(r, "doc_a")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer docA.file.Close()

	docB, err := s.receiveDocument(r, "doc_b")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer docB.file.Close()

	extractedA, err := s.extractUpload(docA)
	if err != nil {
		s.logger.Error().Err(err).Str("field", "doc_a").Msg("extraction failed")
		respondError(w, http.StatusInternalServerError, "failed to extract text from document A")
		return
	}
	extractedB, err := s.extractUpload(docB)
	if err != nil {
		s.logger.Error().Err(err).Str("field", "doc_b").Msg("extraction failed")
		respondError(w, http.StatusInternalServerError, "failed to extract text from document B")
		return
	}

	result, err := s.comparer.Compare(extractedA.Pages, extractedA.Metadata, extractedB.Pages, extractedB.Metadata)
	if err != nil {
		var vErr *compare.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		s.logger.Error().Err(err).Msg("comparison failed")
		respondError(w, http.StatusInternalServerError, "failed to compare documents")
		return
	}

	http.Redirect(w, r, "/results/"+result.ID, http.StatusSeeOther)
}

// upload is a received multipart file validated as a PDF.
type upload struct {
	file     multipart.File
	filename string
}

func (s *Server) receiveDocument(r *http.Request, field string) (*upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, errors.New("both documents are required")
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		file.Close()
		return nil, errors.New("only .pdf files are allowed")
	}
	return &upload{file: file, filename: header.Filename}, nil
}

// extractUpload spools the upload to a temp file for the extractor and
// removes it before returning. The caller owns closing the upload itself.
func (s *Server) extractUpload(u *upload) (*extract.Document, error) {
	tmp, err := os.CreateTemp("", "doc-comparer-*.pdf")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := io.Copy(tmp, u.file); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	doc, err := s.extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("filename", u.filename).Int("pages", len(doc.Pages)).Msg("upload extracted")
	return doc, nil
}
