package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/service"
)

type CheckinHTTP struct {
	Svc *service.CheckinService
}

// Scan looks a participant up without mutating anything. Unknown codes get
// a 200 with valid=false so a mistyped or stale QR does not disrupt the
// scanning flow at the gate.
func (h *CheckinHTTP) Scan(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkin_scan")

	var req struct {
		UID string `json:"uid"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("scan_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Scan(ctx, req.UID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "uid is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if !res.Valid {
		return c.JSON(http.StatusOK, echo.Map{
			"valid":   false,
			"message": "Invalid QR code",
		})
	}

	p := res.Participant
	return c.JSON(http.StatusOK, echo.Map{
		"valid":              true,
		"already_checked_in": res.AlreadyCheckedIn,
		"participant": echo.Map{
			"uid":     p.UID,
			"name":    p.Name,
			"email":   p.Email,
			"phone":   p.Phone,
			"college": p.College,
			"role":    p.Role,
		},
		"checkin_time": res.CheckinTime,
	})
}

func (h *CheckinHTTP) Confirm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkin_confirm")

	var req struct {
		UID string `json:"uid"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("confirm_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Confirm(ctx, req.UID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "uid is required")
		case errors.Is(err, repo.ErrParticipantNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Invalid QR code")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	message := "Check-in successful"
	if res.Status == service.StatusAlreadyCheckedIn {
		message = "Participant already checked in"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":       res.Status,
		"message":      message,
		"checkin_time": res.CheckinTime,
	})
}
