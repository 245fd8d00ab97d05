package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "allocate/internal/delivery/http/helpers"
	"allocate/internal/domain"
	"allocate/internal/validation"
)

// CreateEventRequest is the request body for POST /api/events. Field rules
// run in the validation pipeline, so the DTO itself carries no rules.
type CreateEventRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Date     *string `json:"date"`
}

// UpdateEventRequest is the request body for PUT /api/events/{id}. All fields
// optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Date     *string `json:"date"`
}

// ListEventsResponse is the data payload for GET /api/events.
type ListEventsResponse struct {
	Count  int             `json:"count"`
	Events []*domain.Event `json:"events"`
}

// DeleteEventResponse is the data payload for DELETE /api/events/{id}.
// It carries a confirmation, not the deleted record.
type DeleteEventResponse struct {
	Message string `json:"message"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeEventError maps workflow errors to responses. Validation failures
// carry their field list; anything unexpected is logged and returned as a
// generic internal error.
func (c *EventController) writeEventError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		h.WriteValidationError(w, verr)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "Event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create godoc
// @Summary Create a new event
// @Description Create an event from name, location, and date. Free-text fields are trimmed and HTML-escaped before storage; date must be ISO 8601.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), strOrEmpty(req.Name), strOrEmpty(req.Location), strOrEmpty(req.Date))
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Description Returns all events ordered by date descending. The optional name query parameter is a literal, case-insensitive substring filter.
// @Tags events
// @Produce json
// @Param name query string false "Substring filter on event name"
// @Success 200 {object} helpers.APIResponse "data contains count and events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Count: len(events), Events: events})
}

// GetByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing event id")
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Partial update: any subset of name, location, and date. Present fields are validated and sanitized with the same rules as create.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing event id")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, req.Name, req.Location, req.Date)
	if err != nil {
		c.writeEventError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing event id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeEventError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Message: "Event deleted successfully"})
}
