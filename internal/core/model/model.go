package model

import (
	"time"
)

// RecordKind distinguishes the two punch directions of a stamp event.
type RecordKind string

const (
	KindClockIn  RecordKind = "Einstempeln"
	KindClockOut RecordKind = "Ausstempeln"
)

// StampEvent is a single punch event. Events are immutable once created and
// are never deleted by normal operation.
type StampEvent struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Kind      RecordKind `json:"kind"`
	Timestamp time.Time  `json:"timestamp"`
}

// ClockStatus is the clocked-in/out state of a user.
type ClockStatus string

const (
	StatusClockedIn  ClockStatus = "Eingestempelt"
	StatusClockedOut ClockStatus = "Ausgestempelt"
)

// ClockState is the persisted current-day status for a user. A stored status
// is only valid for the calendar day it was recorded on; readers must treat
// anything older as StatusClockedOut.
type ClockState struct {
	Status   ClockStatus `json:"status"`
	AsOfDate time.Time   `json:"asOfDate"`
}

// Workday is a user's derived daily summary. Date carries the normalized
// DD.MM.YYYY grouping key, not a raw timestamp.
type Workday struct {
	UserID      string  `json:"userId"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hoursWorked"`
	HomeOffice  bool    `json:"homeOffice"`
}

// WorkMonth is a user's derived monthly summary. It is computed on demand and
// never persisted.
type WorkMonth struct {
	UserID          string  `json:"userId"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	HoursWorked     float64 `json:"hoursWorked"`
	HoursShouldWork float64 `json:"hoursShouldWork"`
}

// ProjectState is the lifecycle state of a project.
type ProjectState string

const (
	ProjectActive    ProjectState = "Aktiv"
	ProjectInactive  ProjectState = "Inaktiv"
	ProjectCompleted ProjectState = "Abgeschlossen"
	ProjectCancelled ProjectState = "Abgebrochen"
)

// Project is plain CRUD data owned by a single user.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	State       ProjectState `json:"state"`
	UserID      string       `json:"userId"`
}
