package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bhilliardga/canvex"
)

// exportFilename is the attachment name of the returned archive.
const exportFilename = "canvas_export.zip"

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondDomainError maps application error codes to HTTP statuses.
// Non-application errors become an opaque 500.
func respondDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch canvex.ErrorCode(err) {
	case canvex.EINVALID:
		status = http.StatusBadRequest
	case canvex.ENOTFOUND:
		status = http.StatusNotFound
	case canvex.EUNAUTHORIZED:
		status = http.StatusUnauthorized
	case canvex.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	respondError(w, status, canvex.ErrorMessage(err))
}

// handleExport runs a full export and streams back the archive. The client
// receives a 400 for missing inputs, a zip (possibly containing embedded
// error fields documenting partial data), or a 5xx for catastrophic
// failure. There is no partial failure report outside the zip.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req canvex.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.exports.Export(r.Context(), req)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename=`+exportFilename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Archive); err != nil {
		s.logger.Error("failed to write archive", "error", err)
	}
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// handleChat answers one question about the loaded course material.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.asker == nil {
		respondError(w, http.StatusServiceUnavailable, "chat is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "No question provided")
		return
	}

	answer, err := s.asker.Ask(r.Context(), req.Question)
	if err != nil {
		s.logger.Error("chat failed", "error", err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{Answer: answer})
}
