package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/request"
	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/service"
)

type EventService interface {
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error)
	GetOrganizerEvents(ctx context.Context, organizerID uint) ([]domain.EventWithTicketCount, error)
}

type RegistrationService interface {
	GetRegisteredStudents(ctx context.Context, eventID, organizerID uint) ([]domain.StudentRegistration, error)
}

type EventHandler struct {
	svc    EventService
	regSvc RegistrationService
	uSvc   UserService
}

func NewEventHandler(svc EventService, regSvc RegistrationService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:    svc,
		regSvc: regSvc,
		uSvc:   uSvc,
	}
}

// HandleGetEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get one event by id
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest true "request body"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsOrganizer() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an organizer", user.UserID)))
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), eventFromRequest(req), user.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an owned event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.EventRequest true "request body"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsOrganizer() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an organizer", user.UserID)))
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event := eventFromRequest(req)
	event.EventID = uint(eventID)

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event, user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", eventID))
			return
		}
		if errors.Is(err, service.ErrNotEventOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
			return
		}
		if errors.Is(err, service.ErrCapacityBelowSold) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCapacityBelowSold))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetOrganizerEvents godoc
// @Summary      List the caller's events with ticket counts
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.EventWithTicketCount
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/organizer [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetOrganizerEvents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsOrganizer() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an organizer", user.UserID)))
		return
	}

	events, err := h.svc.GetOrganizerEvents(ctx.Request.Context(), user.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetOrganizerEvents -> h.svc.GetOrganizerEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetRegisteredStudents godoc
// @Summary      List students registered for an owned event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {array}   domain.StudentRegistration
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/registered-students [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetRegisteredStudents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsOrganizer() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an organizer", user.UserID)))
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	students, err := h.regSvc.GetRegisteredStudents(ctx.Request.Context(), uint(eventID), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", eventID))
			return
		}
		if errors.Is(err, service.ErrNotEventOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
			return
		}

		err = fmt.Errorf("v1.HandleGetRegisteredStudents -> h.regSvc.GetRegisteredStudents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, students)
}

func eventFromRequest(req request.EventRequest) domain.Event {
	return domain.Event{
		Title:         req.Title,
		Description:   req.Description,
		EventType:     req.EventType,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Location:      req.Location,
		Coordinates:   req.Coordinates,
		Capacity:      req.Capacity,
		ImageURL:      req.Image,
		Price:         req.Price,
	}
}
