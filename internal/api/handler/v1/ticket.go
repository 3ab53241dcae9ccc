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

type TicketService interface {
	Purchase(ctx context.Context, userID, eventID uint) (domain.Ticket, error)
	GetTicket(ctx context.Context, id uint) (domain.Ticket, error)
	GetUserTickets(ctx context.Context, userID uint) ([]domain.Ticket, error)
	Validate(ctx context.Context, eventID uint, qrCode string, scannerID uint) (domain.ScanResult, error)
	GetScanStats(ctx context.Context, eventID, requesterID uint) (domain.ScanStats, error)
}

type TicketHandler struct {
	svc  TicketService
	uSvc UserService
}

func NewTicketHandler(svc TicketService, uSvc UserService) *TicketHandler {
	return &TicketHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandlePurchaseTicket godoc
// @Summary      Purchase a ticket for an event
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.PurchaseTicketRequest true "request body"
// @Success      201      {object}  domain.Ticket
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets [post]
// @Security BearerAuth
func (h *TicketHandler) HandlePurchaseTicket(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.Purchase(ctx.Request.Context(), user.UserID, req.EventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", req.EventID))
			return
		}

		err = fmt.Errorf("v1.HandlePurchaseTicket -> h.svc.Purchase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleGetMyTickets godoc
// @Summary      List the caller's tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.Ticket
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/me [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetMyTickets(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tickets, err := h.svc.GetUserTickets(ctx.Request.Context(), user.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyTickets -> h.svc.GetUserTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetTicket godoc
// @Summary      Get one ticket by id
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket id"
// @Success      200  {object}  domain.Ticket
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	ticketID, err := strconv.ParseUint(ctx.Param("ticketID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid ticket ID: %w", err)))
		return
	}

	ticket, err := h.svc.GetTicket(ctx.Request.Context(), uint(ticketID))
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ticketId", ticketID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTicket -> h.svc.GetTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleValidateTicket godoc
// @Summary      Validate a scanned QR code for an event
// @Description  Scan outcomes (invalid, already scanned, success) are 200s
// @Description  with a status field; only a non-owner caller gets 403.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Param        request  body      request.ScanRequest true "request body"
// @Success      200  {object}  response.ScanResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/events/{eventID}/validate [post]
// @Security BearerAuth
func (h *TicketHandler) HandleValidateTicket(ctx *gin.Context) {
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

	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Validate(ctx.Request.Context(), uint(eventID), req.QRCode, user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", eventID))
			return
		}
		if errors.Is(err, service.ErrNotEventOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
			return
		}

		err = fmt.Errorf("v1.HandleValidateTicket -> h.svc.Validate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewScanResponse(result))
}

// HandleGetScanStats godoc
// @Summary      Scan statistics for an event
// @Tags         tickets
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  response.ScanStatsResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/events/{eventID}/scan-stats [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetScanStats(ctx *gin.Context) {
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

	stats, err := h.svc.GetScanStats(ctx.Request.Context(), uint(eventID), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventId", eventID))
			return
		}
		if errors.Is(err, service.ErrNotEventOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
			return
		}

		err = fmt.Errorf("v1.HandleGetScanStats -> h.svc.GetScanStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewScanStatsResponse(stats))
}
