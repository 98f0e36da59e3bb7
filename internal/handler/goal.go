package handler

import (
	"errors"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var req model.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	g, err := h.Goals.Create(c.Request.Context(), req.ToGoal())
	if err != nil {
		h.Logger.Sugar().Errorw("create goal", "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, g)
}

func (h *Handler) ListGoals(c *gin.Context) {
	goals, err := h.Goals.List(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("list goals", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, goals)
}

func (h *Handler) GetGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	g, err := h.Goals.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Goal not found")
			return
		}
		h.Logger.Sugar().Errorw("get goal", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, g)
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Goals.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Goal not found")
			return
		}
		h.Logger.Sugar().Errorw("delete goal", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{"ok": true})
}
