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

type SavedEventService interface {
	SaveEvent(ctx context.Context, userID, eventID uint) (domain.SavedEvent, error)
	GetSavedEvents(ctx context.Context, userID uint) ([]domain.Event, error)
	IsSaved(ctx context.Context, userID, eventID uint) (bool, error)
	UnsaveEvent(ctx context.Context, userID, eventID uint) error
}

type SavedEventHandler struct {
	svc  SavedEventService
	uSvc UserService
}

func NewSavedEventHandler(svc SavedEventService, uSvc UserService) *SavedEventHandler {
	return &SavedEventHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleSaveEvent godoc
// @Summary      Bookmark an event
// @Tags         saved-events
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveEventRequest true "request body"
// @Success      201  {object}  domain.SavedEvent
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /saved-events [post]
// @Security BearerAuth
func (h *SavedEventHandler) HandleSaveEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	saved, err := h.svc.SaveEvent(ctx.Request.Context(), user.UserID, req.EventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", req.EventID))
			return
		}
		if errors.Is(err, service.ErrSavedEventExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrSavedEventExists))
			return
		}

		err = fmt.Errorf("v1.HandleSaveEvent -> h.svc.SaveEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, saved)
}

// HandleGetMySavedEvents godoc
// @Summary      List the caller's bookmarked events
// @Tags         saved-events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /saved-events/me [get]
// @Security BearerAuth
func (h *SavedEventHandler) HandleGetMySavedEvents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.GetSavedEvents(ctx.Request.Context(), user.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMySavedEvents -> h.svc.GetSavedEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCheckSavedEvent godoc
// @Summary      Check whether the caller bookmarked an event
// @Tags         saved-events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  response.SavedCheckResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /saved-events/check/{eventID} [get]
// @Security BearerAuth
func (h *SavedEventHandler) HandleCheckSavedEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	saved, err := h.svc.IsSaved(ctx.Request.Context(), user.UserID, uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleCheckSavedEvent -> h.svc.IsSaved -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SavedCheckResponse{IsSaved: saved})
}

// HandleUnsaveEvent godoc
// @Summary      Remove a bookmark
// @Tags         saved-events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /saved-events/event/{eventID} [delete]
// @Security BearerAuth
func (h *SavedEventHandler) HandleUnsaveEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	if err := h.svc.UnsaveEvent(ctx.Request.Context(), user.UserID, uint(eventID)); err != nil {
		if errors.Is(err, service.ErrSavedEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("saved event", "eventId", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleUnsaveEvent -> h.svc.UnsaveEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Event removed from saved events"})
}
