package main

import (
	"encoding/json"
	"log"
	"net/http"
)

// A simple struct to capture the exported daily summary
type WorkdayExport struct {
	UserID      string  `json:"userId"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hoursWorked"`
	HomeOffice  bool    `json:"homeOffice"`
}

func exportHandler(w http.ResponseWriter, r *http.Request) {
	var export WorkdayExport
	if err := json.NewDecoder(r.Body).Decode(&export); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	log.Printf("Received workday export for UserID: %s, Date: %s, Hours: %.2f", export.UserID, export.Date, export.HoursWorked)
	w.WriteHeader(http.StatusOK)
}

func main() {
	http.HandleFunc("/", exportHandler)
	log.Println("HR export mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
