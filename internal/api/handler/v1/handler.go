package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/api/middleware"
	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetPendingOrganizers(ctx context.Context) ([]domain.Organizer, error)
	ApproveOrganizer(ctx context.Context, id uint) error
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getUserFromContext resolves the authenticated user from the JWT claims
// the middleware stashed in the gin context.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized("missing user context")
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("invalid user context")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized("unknown user")
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> %w", err))
	}

	return user, nil
}
