package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/service"
)

type StatsHTTP struct {
	Svc *service.StatsService
}

func (h *StatsHTTP) Overview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats_overview")

	res, err := h.Svc.Overview(ctx)
	if err != nil {
		l.Error("stats_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, res)
}
