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

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns events matching the query parameters.
func (h *EventHandler) List(c echo.Context) error {
	var input usecase.ListEventsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}

	output, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get returns a single event by code.
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// Create stores a new event hosted by the caller.
func (h *EventHandler) Create(c echo.Context) error {
	var input usecase.CreateEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.Create(c.Request().Context(), deliverycontext.GetUser(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// Update applies changes to an event.
func (h *EventHandler) Update(c echo.Context) error {
	var input usecase.UpdateEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.Update(c.Request().Context(), deliverycontext.GetUser(c), c.Param("code"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), deliverycontext.GetUser(c), c.Param("code")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
