package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- in-memory stores ----

type fakeApplicationStore struct {
	nextID    int64
	apps      map[int64]*model.Application
	lastLimit int
	lastSkip  int
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[int64]*model.Application)}
}

func (f *fakeApplicationStore) Create(_ context.Context, a *model.Application) (*model.Application, error) {
	f.nextID++
	cp := *a
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.apps[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id int64) (*model.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeApplicationStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.apps[id]
	return ok, nil
}

func (f *fakeApplicationStore) List(_ context.Context, limit, offset int) ([]model.Application, int, error) {
	f.lastLimit, f.lastSkip = limit, offset

	ids := make([]int64, 0, len(f.apps))
	for id := range f.apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.Application, 0, limit)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *f.apps[id])
	}
	return out, len(f.apps), nil
}

func (f *fakeApplicationStore) Update(_ context.Context, id int64, updates map[string]any) (*model.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	setOptText := func(dst **string, val any) {
		if val == nil {
			*dst = nil
			return
		}
		s := val.(string)
		*dst = &s
	}

	for col, val := range updates {
		switch col {
		case "job_title":
			a.JobTitle = val.(string)
		case "company_name":
			a.CompanyName = val.(string)
		case "status":
			a.Status = val.(string)
		case "priority":
			a.Priority = val.(string)
		case "archived":
			a.Archived = val.(bool)
		case "notes":
			setOptText(&a.Notes, val)
		case "location":
			setOptText(&a.Location, val)
		}
	}
	a.UpdatedAt = time.Now().Add(time.Millisecond)
	out := *a
	return &out, nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.apps[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.apps, id)
	return nil
}

type fakeHistoryStore struct {
	rows map[int64][]model.StatusHistory
}

func (f *fakeHistoryStore) ListByApplication(_ context.Context, applicationID int64) ([]model.StatusHistory, error) {
	return f.rows[applicationID], nil
}

type fakeInterviewStore struct {
	nextID int64
	items  map[int64]*model.Interview
}

func (f *fakeInterviewStore) Create(_ context.Context, iv *model.Interview) (*model.Interview, error) {
	f.nextID++
	cp := *iv
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeInterviewStore) ListByApplication(_ context.Context, applicationID int64) ([]model.Interview, error) {
	out := []model.Interview{}
	for _, iv := range f.items {
		if iv.ApplicationID == applicationID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewStore) Update(_ context.Context, id int64, updates map[string]any) (*model.Interview, error) {
	iv, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for col, val := range updates {
		switch col {
		case "preparation_status":
			iv.PreparationStatus = val.(string)
		case "outcome":
			if val == nil {
				iv.Outcome = nil
			} else {
				s := val.(string)
				iv.Outcome = &s
			}
		}
	}
	out := *iv
	return &out, nil
}

func (f *fakeInterviewStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeReminderStore struct {
	nextID int64
	items  map[int64]*model.Reminder
}

func (f *fakeReminderStore) Create(_ context.Context, rem *model.Reminder) (*model.Reminder, error) {
	f.nextID++
	cp := *rem
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeReminderStore) ListByApplication(_ context.Context, applicationID int64) ([]model.Reminder, error) {
	out := []model.Reminder{}
	for _, rem := range f.items {
		if rem.ApplicationID == applicationID {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func (f *fakeReminderStore) Update(_ context.Context, id int64, updates map[string]any) (*model.Reminder, error) {
	rem, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for col, val := range updates {
		switch col {
		case "completed":
			rem.Completed = val.(bool)
		case "message":
			rem.Message = val.(string)
		}
	}
	out := *rem
	return &out, nil
}

func (f *fakeReminderStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeGoalStore struct {
	nextID int64
	items  map[int64]*model.Goal
}

func (f *fakeGoalStore) Create(_ context.Context, g *model.Goal) (*model.Goal, error) {
	f.nextID++
	cp := *g
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeGoalStore) GetByID(_ context.Context, id int64) (*model.Goal, error) {
	g, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *g
	return &out, nil
}

func (f *fakeGoalStore) List(_ context.Context) ([]model.Goal, error) {
	out := []model.Goal{}
	for _, g := range f.items {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGoalStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ---- harness ----

type testEnv struct {
	router     *gin.Engine
	apps       *fakeApplicationStore
	history    *fakeHistoryStore
	interviews *fakeInterviewStore
	reminders  *fakeReminderStore
	goals      *fakeGoalStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		apps:       newFakeApplicationStore(),
		history:    &fakeHistoryStore{rows: make(map[int64][]model.StatusHistory)},
		interviews: &fakeInterviewStore{items: make(map[int64]*model.Interview)},
		reminders:  &fakeReminderStore{items: make(map[int64]*model.Reminder)},
		goals:      &fakeGoalStore{items: make(map[int64]*model.Goal)},
	}

	h := &Handler{
		Logger:       zap.NewNop(),
		Applications: env.apps,
		History:      env.history,
		Interviews:   env.interviews,
		Reminders:    env.reminders,
		Goals:        env.goals,
	}

	r := gin.New()
	r.POST("/applications", h.CreateApplication)
	r.GET("/applications", h.ListApplications)
	r.GET("/applications/:id", h.GetApplication)
	r.PUT("/applications/:id", h.UpdateApplication)
	r.DELETE("/applications/:id", h.DeleteApplication)
	r.GET("/applications/:id/history", h.ListStatusHistory)
	r.POST("/applications/:id/interviews", h.CreateInterview)
	r.GET("/applications/:id/interviews", h.ListInterviews)
	r.POST("/applications/:id/reminders", h.CreateReminder)
	r.GET("/applications/:id/reminders", h.ListReminders)
	r.PATCH("/interviews/:id", h.UpdateInterview)
	r.DELETE("/interviews/:id", h.DeleteInterview)
	r.PATCH("/reminders/:id", h.UpdateReminder)
	r.DELETE("/reminders/:id", h.DeleteReminder)
	r.POST("/goals", h.CreateGoal)
	r.GET("/goals", h.ListGoals)
	r.GET("/goals/:id", h.GetGoal)
	r.DELETE("/goals/:id", h.DeleteGoal)

	env.router = r
	return env
}

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.Meta      `json:"meta"`
}

func (e *testEnv) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func (e *testEnv) seedApplication(t *testing.T, jobTitle, companyName string) *model.Application {
	t.Helper()
	app, err := e.apps.Create(context.Background(), (&model.CreateApplicationRequest{
		JobTitle:    jobTitle,
		CompanyName: companyName,
	}).ToApplication())
	require.NoError(t, err)
	return app
}
