package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/service"
)

type ParticipantHTTP struct {
	Svc *service.RegistrationService
}

// Register is called by the registration form backend; it is the one
// unauthenticated mutating route.
func (h *ParticipantHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "participant_register")

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		College string `json:"college"`
		Role    string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Register(ctx, req.Name, req.Email, req.Phone, req.College, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
		case errors.Is(err, repo.ErrEmailExists):
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"uid":     res.UID,
		"qr_path": res.QRPath,
		"message": "Registration successful",
	})
}
