package handler

import (
	"errors"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
)

const msgApplicationNotFound = "Application not found"

func (h *Handler) CreateApplication(c *gin.Context) {
	var req model.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	app, err := h.Applications.Create(c.Request.Context(), req.ToApplication())
	if err != nil {
		h.Logger.Sugar().Errorw("create application", "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, app)
}

func (h *Handler) ListApplications(c *gin.Context) {
	var q model.ListApplicationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	limit := q.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	skip := max(q.Skip, 0)

	apps, total, err := h.Applications.List(c.Request.Context(), limit, skip)
	if err != nil {
		h.Logger.Sugar().Errorw("list applications", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OKWithMeta(c, apps, &response.Meta{Skip: skip, Limit: limit, Total: total})
}

func (h *Handler) GetApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.Applications.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, msgApplicationNotFound)
			return
		}
		h.Logger.Sugar().Errorw("get application", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, app)
}

func (h *Handler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	updates, err := req.Updates()
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	app, err := h.Applications.Update(c.Request.Context(), id, updates)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(c, msgApplicationNotFound)
		case errors.Is(err, repository.ErrConstraint):
			h.Logger.Sugar().Errorw("update application constraint", "id", id, "err", err)
			response.InternalError(c, "")
		default:
			h.Logger.Sugar().Errorw("update application", "id", id, "err", err)
			response.InternalError(c, "")
		}
		return
	}

	response.OK(c, app)
}

func (h *Handler) DeleteApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Applications.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, msgApplicationNotFound)
			return
		}
		h.Logger.Sugar().Errorw("delete application", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{"ok": true})
}

func (h *Handler) ListStatusHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	exists, err := h.Applications.Exists(c.Request.Context(), id)
	if err != nil {
		h.Logger.Sugar().Errorw("check application", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}
	if !exists {
		response.NotFound(c, msgApplicationNotFound)
		return
	}

	history, err := h.History.ListByApplication(c.Request.Context(), id)
	if err != nil {
		h.Logger.Sugar().Errorw("list status history", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, history)
}
