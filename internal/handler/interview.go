package handler

import (
	"errors"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInterview(c *gin.Context) {
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	exists, err := h.Applications.Exists(c.Request.Context(), appID)
	if err != nil {
		h.Logger.Sugar().Errorw("check application", "id", appID, "err", err)
		response.InternalError(c, "")
		return
	}
	if !exists {
		response.NotFound(c, msgApplicationNotFound)
		return
	}

	iv, err := h.Interviews.Create(c.Request.Context(), req.ToInterview(appID))
	if err != nil {
		h.Logger.Sugar().Errorw("create interview", "application_id", appID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, iv)
}

func (h *Handler) ListInterviews(c *gin.Context) {
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	exists, err := h.Applications.Exists(c.Request.Context(), appID)
	if err != nil {
		h.Logger.Sugar().Errorw("check application", "id", appID, "err", err)
		response.InternalError(c, "")
		return
	}
	if !exists {
		response.NotFound(c, msgApplicationNotFound)
		return
	}

	interviews, err := h.Interviews.ListByApplication(c.Request.Context(), appID)
	if err != nil {
		h.Logger.Sugar().Errorw("list interviews", "application_id", appID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, interviews)
}

func (h *Handler) UpdateInterview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	updates, err := req.Updates()
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	iv, err := h.Interviews.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Sugar().Errorw("update interview", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, iv)
}

func (h *Handler) DeleteInterview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Interviews.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Sugar().Errorw("delete interview", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{"ok": true})
}
