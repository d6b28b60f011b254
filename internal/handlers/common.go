package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
	"github.com/lehigh-university-libraries/itemindexer/internal/storage"
)

// maxRecordBytes bounds a posted record.
const maxRecordBytes = 10 << 20

type Handler struct {
	documentStore *storage.DocumentStore
	indexer       *holdings.Indexer
}

func New(indexer *holdings.Indexer) *Handler {
	return &Handler{
		documentStore: storage.New(),
		indexer:       indexer,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Document helpers
func (h *Handler) getDocumentOrError(w http.ResponseWriter, recordID string) (*holdings.Document, bool) {
	doc, exists := h.documentStore.Get(recordID)
	if !exists {
		h.writeError(w, "Record not found", http.StatusNotFound)
		return nil, false
	}
	return doc, true
}

func (h *Handler) HandleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Unable to write healthcheck", "err", err)
	}
}
