package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

// HandleRecords lists indexed documents or indexes a posted record.
func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.documentStore.GetAll())
	case "POST":
		var rec holdings.Record
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBytes)).Decode(&rec); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			h.writeError(w, "id is required", http.StatusBadRequest)
			return
		}

		doc := h.indexer.Process(rec)
		h.documentStore.Set(doc)
		slog.Info("Indexed record", "record_id", doc.ID, "items", len(doc.Items), "preferred_barcode", doc.PreferredBarcode)
		h.writeJSON(w, doc)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleRecordDetail(w http.ResponseWriter, r *http.Request) {
	recordID := strings.TrimPrefix(r.URL.Path, "/api/records/")

	doc, ok := h.getDocumentOrError(w, recordID)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, doc)
	case "DELETE":
		h.documentStore.Delete(recordID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
