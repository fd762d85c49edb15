package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"timeclock.service/internal/core"
	"timeclock.service/internal/core/dates"
)

type WorkdayHandler struct {
	Service *core.WorkdayService
}

func (h *WorkdayHandler) GetWorkday(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	date, err := dates.Parse(vars["date"])
	if err != nil {
		http.Error(w, "Date must be DD.MM.YYYY or YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	workday, err := h.Service.ProjectWorkday(r.Context(), userID, date)
	if err != nil {
		http.Error(w, "Service error projecting workday", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workday)
}

func (h *WorkdayHandler) GetWorkMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	workMonth, err := h.Service.ProjectWorkMonth(r.Context(), userID, year, time.Month(month))
	if err != nil {
		http.Error(w, "Service error projecting work month", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workMonth)
}

func (h *WorkdayHandler) GetWorkdays(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var fetch func() (any, error)
	switch r.URL.Query().Get("window") {
	case "current-week":
		fetch = func() (any, error) { return h.Service.WorkdaysOfCurrentWeek(r.Context(), userID) }
	case "", "last-2-weeks":
		fetch = func() (any, error) { return h.Service.WorkdaysOfLastTwoWeeks(r.Context(), userID) }
	default:
		http.Error(w, "Window must be current-week or last-2-weeks", http.StatusBadRequest)
		return
	}

	workdays, err := fetch()
	if err != nil {
		http.Error(w, "Service error listing workdays", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workdays)
}

func (h *WorkdayHandler) SetHomeOffice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	date, err := dates.Parse(vars["date"])
	if err != nil {
		http.Error(w, "Date must be DD.MM.YYYY or YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var req struct {
		HomeOffice bool `json:"homeOffice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetHomeOffice(r.Context(), userID, date, req.HomeOffice); err != nil {
		http.Error(w, "Service error storing home office flag", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
