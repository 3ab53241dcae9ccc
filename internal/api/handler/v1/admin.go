package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/domain"
)

type StatsService interface {
	GetGlobalStats(ctx context.Context) (domain.GlobalStats, error)
}

type AdminHandler struct {
	svc StatsService
}

func NewAdminHandler(svc StatsService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleGetGlobalStats godoc
// @Summary      Platform-wide statistics
// @Tags         administrators
// @Produce      json
// @Success      200  {object}  domain.GlobalStats
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /administrators/stats/global [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetGlobalStats(ctx *gin.Context) {
	stats, err := h.svc.GetGlobalStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetGlobalStats -> h.svc.GetGlobalStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
