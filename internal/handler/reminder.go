package handler

import (
	"errors"

	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/pkg/model"
	"github.com/applytrack/applytrack/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateReminder(c *gin.Context) {
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.CreateReminderRequest
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

	rem, err := h.Reminders.Create(c.Request.Context(), req.ToReminder(appID))
	if err != nil {
		h.Logger.Sugar().Errorw("create reminder", "application_id", appID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, rem)
}

func (h *Handler) ListReminders(c *gin.Context) {
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

	reminders, err := h.Reminders.ListByApplication(c.Request.Context(), appID)
	if err != nil {
		h.Logger.Sugar().Errorw("list reminders", "application_id", appID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, reminders)
}

func (h *Handler) UpdateReminder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	updates, err := req.Updates()
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	rem, err := h.Reminders.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Reminder not found")
			return
		}
		h.Logger.Sugar().Errorw("update reminder", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, rem)
}

func (h *Handler) DeleteReminder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Reminders.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Reminder not found")
			return
		}
		h.Logger.Sugar().Errorw("delete reminder", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{"ok": true})
}
