package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/wudi/headline/headline"
	"github.com/wudi/headline/metrics"
	"github.com/wudi/headline/session"
)

// ExtractResponse is returned by the extraction endpoints.
type ExtractResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FullText  string `json:"full_text"`
	Title     string `json:"title"`
	Size      int    `json:"size"`
	Duplicate bool   `json:"duplicate"`
}

// pasteRequest carries a clipboard image from the browser paste bridge. Data
// is base64, with or without a data-URL prefix.
type pasteRequest struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	name := filepath.Base(header.Filename)
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	s.process(w, r, name, data)
}

func (s *Server) handlePaste(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	var req pasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse request: %v", err))
		return
	}
	if req.Data == "" {
		writeError(w, http.StatusBadRequest, "missing image data")
		return
	}

	payload := req.Data
	if i := strings.IndexByte(payload, ','); i >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode base64: %v", err))
		return
	}

	name := req.Name
	if name == "" {
		name = "paste"
	}
	s.process(w, r, name, data)
}

// process runs decode, extraction, and session bookkeeping for one image.
func (s *Server) process(w http.ResponseWriter, r *http.Request, name string, data []byte) {
	img, format, err := decodeImage(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode image: %v", err))
		return
	}

	start := time.Now()
	res, err := s.extractor.Extract(r.Context(), img)
	if err != nil {
		metrics.ObserveExtraction(metrics.ResultError, time.Since(start))
		s.logger.Error("extraction failed", "name", name, "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("extract: %v", err))
		return
	}
	metrics.ObserveExtraction(resultLabel(res.Title), time.Since(start))

	entry, added := s.store.Add(name, data, res)
	metrics.SetSessionSize(s.store.Len())
	s.logger.Info("image processed",
		"name", name,
		"format", format,
		"title", res.Title,
		"duplicate", !added)

	writeJSON(w, http.StatusOK, ExtractResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		FullText:  entry.FullText,
		Title:     entry.Title,
		Size:      entry.Size,
		Duplicate: !added,
	})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Entries()
	if entries == nil {
		entries = []session.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(s.docsHTML)
}

func resultLabel(title string) string {
	switch title {
	case headline.NoTextSentinel:
		return metrics.ResultNoText
	case headline.NoValidTextSentinel:
		return metrics.ResultNoValidText
	default:
		return metrics.ResultTitle
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
