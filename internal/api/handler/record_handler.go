package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"timeclock.service/internal/core"
	"timeclock.service/internal/core/model"
)

type RecordHandler struct {
	Service *core.RecordService
}

func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var record model.StampEvent
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if record.UserID == "" {
		http.Error(w, "UserID is required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateRecord(r.Context(), record)
	if errors.Is(err, core.ErrInvalidRecordKind) {
		http.Error(w, "Kind must be Einstempeln or Ausstempeln", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Service error creating record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	records, err := h.Service.ListRecords(r.Context(), userID)
	if err != nil {
		http.Error(w, "Service error listing records", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
