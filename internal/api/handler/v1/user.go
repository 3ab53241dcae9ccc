package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/service"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetCurrentUser godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetCurrentUser(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetPendingOrganizers godoc
// @Summary      List organizers awaiting approval
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.Organizer
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/pending-organizers [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetPendingOrganizers(ctx *gin.Context) {
	organizers, err := h.svc.GetPendingOrganizers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPendingOrganizers -> h.svc.GetPendingOrganizers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, organizers)
}

// HandleApproveOrganizer godoc
// @Summary      Approve a pending organizer account
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user id"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/approve-organizer/{userID} [put]
// @Security BearerAuth
func (h *UserHandler) HandleApproveOrganizer(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID: %w", err)))
		return
	}

	if err := h.svc.ApproveOrganizer(ctx.Request.Context(), uint(userID)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "userId", userID))
			return
		}

		err = fmt.Errorf("v1.HandleApproveOrganizer -> h.svc.ApproveOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Organizer approved successfully"})
}
