package handler

import (
	"context"
	"strconv"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store interfaces keep the handlers decoupled from the pgx repositories:
// the persistence handle is injected at construction time and every call
// acquires its own connection scope inside the repository.

type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) (*model.Application, error)
	GetByID(ctx context.Context, id int64) (*model.Application, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]model.Application, int, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Application, error)
	Delete(ctx context.Context, id int64) error
}

type HistoryStore interface {
	ListByApplication(ctx context.Context, applicationID int64) ([]model.StatusHistory, error)
}

type InterviewStore interface {
	Create(ctx context.Context, iv *model.Interview) (*model.Interview, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]model.Interview, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Interview, error)
	Delete(ctx context.Context, id int64) error
}

type ReminderStore interface {
	Create(ctx context.Context, rem *model.Reminder) (*model.Reminder, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]model.Reminder, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

type GoalStore interface {
	Create(ctx context.Context, g *model.Goal) (*model.Goal, error)
	GetByID(ctx context.Context, id int64) (*model.Goal, error)
	List(ctx context.Context) ([]model.Goal, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Logger       *zap.Logger
	Applications ApplicationStore
	History      HistoryStore
	Interviews   InterviewStore
	Reminders    ReminderStore
	Goals        GoalStore
}

func New(log *zap.Logger, repo *repository.Repository) *Handler {
	return &Handler{
		Logger:       log,
		Applications: repo.Application,
		History:      repo.History,
		Interviews:   repo.Interview,
		Reminders:    repo.Reminder,
		Goals:        repo.Goal,
	}
}

func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// pathID parses a numeric path parameter, responding 400 on garbage. Zero and
// negative values parse fine and fall through to the store, which reports
// them as not found.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
