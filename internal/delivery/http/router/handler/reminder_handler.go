package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/delivery/http/response"
	"evently/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler holds dependencies for reminder-related handlers.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	var input usecase.ListRemindersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}

	output, err := h.uc.List(c.Request().Context(), deliverycontext.GetUser(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create stores a new reminder owned by the caller.
func (h *ReminderHandler) Create(c echo.Context) error {
	var input usecase.CreateReminderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reminder, err := h.uc.Create(c.Request().Context(), deliverycontext.GetUser(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder created successfully")
}

// Update applies changes to a reminder.
func (h *ReminderHandler) Update(c echo.Context) error {
	var input usecase.UpdateReminderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reminder, err := h.uc.Update(c.Request().Context(), deliverycontext.GetUser(c), c.Param("code"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder updated successfully")
}

// Delete soft-deletes a reminder.
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), deliverycontext.GetUser(c), c.Param("code")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder deleted successfully")
}
