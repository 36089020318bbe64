package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/dto"
)

const healthTimeout = 3 * time.Second

// HealthChecker 는 CMS 연결 상태를 확인한다. *cmsclient.Client 가 구현한다.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports whether the content API answers. An unconfigured content API is reported but not treated as down.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Failure      503  {object}  dto.HealthDTO
// @Router       /health [get]
func HealthHandler(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		err := checker.Health(ctx)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", ContentAPI: "up"})
		case errors.Is(err, cmsclient.ErrNotConfigured):
			c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", ContentAPI: "not_configured"})
		default:
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", ContentAPI: "down", Error: err.Error()})
		}
	}
}
