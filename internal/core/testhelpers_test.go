package core

import (
	"context"
	"fmt"
	"time"

	"timeclock.service/internal/core/model"
)

// fakeRepo is an in-memory stand-in for the Postgres repository.
type fakeRepo struct {
	events     []model.StampEvent
	homeOffice map[string]bool
	workdays   map[string]model.Workday
	projects   map[string]model.Project

	listErr   error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		homeOffice: make(map[string]bool),
		workdays:   make(map[string]model.Workday),
		projects:   make(map[string]model.Project),
	}
}

func dayFlagKey(userID, dateKey string) string {
	return userID + "|" + dateKey
}

func (f *fakeRepo) CreateRecord(_ context.Context, record model.StampEvent) (model.StampEvent, error) {
	if f.createErr != nil {
		return model.StampEvent{}, f.createErr
	}
	record.ID = fmt.Sprintf("ev-%d", len(f.events)+1)
	f.events = append(f.events, record)
	return record, nil
}

func (f *fakeRepo) ListRecords(_ context.Context, userID string) ([]model.StampEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.StampEvent, 0)
	for _, ev := range f.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRecordsInRange(_ context.Context, userID string, start, end time.Time) ([]model.StampEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.StampEvent, 0)
	for _, ev := range f.events {
		if ev.UserID != userID || ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeRepo) GetHomeOfficeFlag(_ context.Context, userID, dateKey string) (bool, bool, error) {
	flag, found := f.homeOffice[dayFlagKey(userID, dateKey)]
	return flag, found, nil
}

func (f *fakeRepo) SetHomeOfficeFlag(_ context.Context, userID, dateKey string, homeOffice bool) error {
	f.homeOffice[dayFlagKey(userID, dateKey)] = homeOffice
	return nil
}

func (f *fakeRepo) UpsertWorkday(_ context.Context, workday model.Workday) error {
	f.workdays[dayFlagKey(workday.UserID, workday.Date)] = workday
	return nil
}

func (f *fakeRepo) GetWorkday(_ context.Context, userID, dateKey string) (*model.Workday, error) {
	wd, ok := f.workdays[dayFlagKey(userID, dateKey)]
	if !ok {
		return nil, nil
	}
	return &wd, nil
}

func (f *fakeRepo) CreateProject(_ context.Context, project model.Project) (model.Project, error) {
	if project.ID == "" {
		project.ID = fmt.Sprintf("p-%d", len(f.projects)+1)
	}
	f.projects[project.ID] = project
	return project, nil
}

func (f *fakeRepo) GetProject(_ context.Context, id string) (*model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeRepo) ListProjects(_ context.Context, userID string) ([]model.Project, error) {
	out := make([]model.Project, 0)
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateProject(_ context.Context, project model.Project) error {
	f.projects[project.ID] = project
	return nil
}

func (f *fakeRepo) DeleteProject(_ context.Context, id string) error {
	delete(f.projects, id)
	return nil
}

// fakeStateStore is an in-memory clock state store.
type fakeStateStore struct {
	states   map[string]model.ClockState
	writeErr error
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: make(map[string]model.ClockState)}
}

func (f *fakeStateStore) ReadState(_ context.Context, userID string) (*model.ClockState, error) {
	state, ok := f.states[userID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (f *fakeStateStore) WriteState(_ context.Context, userID string, state model.ClockState) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.states[userID] = state
	return nil
}

// fakeProducer records every published event.
type fakeProducer struct {
	workdayEvents []interface{}
	emailEvents   []interface{}
	publishErr    error
}

func (f *fakeProducer) PublishWorkday(_ context.Context, body interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.workdayEvents = append(f.workdayEvents, body)
	return nil
}

func (f *fakeProducer) PublishEmail(_ context.Context, body interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.emailEvents = append(f.emailEvents, body)
	return nil
}
