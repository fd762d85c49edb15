package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"timeclock.service/internal/core"
)

type ClockHandler struct {
	Service *core.ClockService
}

type clockRequest struct {
	UserID string `json:"userId"`
}

func (h *ClockHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "UserID is required", http.StatusBadRequest)
		return
	}

	event, err := h.Service.ClockIn(r.Context(), req.UserID)
	if errors.Is(err, core.ErrAlreadyClockedIn) {
		http.Error(w, "Already clocked in", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Service error processing clock-in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func (h *ClockHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "UserID is required", http.StatusBadRequest)
		return
	}

	event, err := h.Service.ClockOut(r.Context(), req.UserID)
	if errors.Is(err, core.ErrNotClockedIn) {
		http.Error(w, "Not clocked in", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Service error processing clock-out", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func (h *ClockHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	status, err := h.Service.ReadStatus(r.Context(), userID)
	if err != nil {
		http.Error(w, "Service error reading clock status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"userId": userID, "status": status})
}
