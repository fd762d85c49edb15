package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"timeclock.service/internal/api/handler"
	"timeclock.service/internal/core"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(clocks *core.ClockService, records *core.RecordService, workdays *core.WorkdayService, projects *core.ProjectService) *mux.Router {

	clockHandler := handler.ClockHandler{Service: clocks}
	recordHandler := handler.RecordHandler{Service: records}
	workdayHandler := handler.WorkdayHandler{Service: workdays}
	projectHandler := handler.ProjectHandler{Service: projects}

	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/clock/in", clockHandler.ClockIn).Methods(http.MethodPost)
	api.HandleFunc("/clock/out", clockHandler.ClockOut).Methods(http.MethodPost)
	api.HandleFunc("/clock/status/{userId}", clockHandler.Status).Methods(http.MethodGet)

	api.HandleFunc("/records", recordHandler.CreateRecord).Methods(http.MethodPost)
	api.HandleFunc("/records/{userId}", recordHandler.ListRecords).Methods(http.MethodGet)

	api.HandleFunc("/users/{userId}/workdays", workdayHandler.GetWorkdays).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/workdays/{date}", workdayHandler.GetWorkday).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/workdays/{date}/homeoffice", workdayHandler.SetHomeOffice).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}/workmonths/{year}/{month}", workdayHandler.GetWorkMonth).Methods(http.MethodGet)

	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects", projectHandler.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.GetProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	return r
}
