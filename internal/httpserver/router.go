package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/aicsoa/checkin-backend/internal/middleware/auth"
	"github.com/aicsoa/checkin-backend/internal/models"
)

type Deps struct {
	DB                 *gorm.DB
	AuthHandler        *AuthHTTP
	ParticipantHandler *ParticipantHTTP
	CheckinHandler     *CheckinHTTP
	StatsHandler       *StatsHTTP
	SearchHandler      *SearchHTTP
	JWTSecret          []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "Backend running"})
	})
	e.GET("/health/ready", func(c echo.Context) error {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "db unreachable")
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.ParticipantHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)

	authMw := auth.NewSimpleAuth(d.JWTSecret)

	// Any authenticated staff account may scan and confirm.
	staff := v1.Group("", authMw.RequireAuth)
	staff.POST("/scan", d.CheckinHandler.Scan)
	staff.POST("/checkin", d.CheckinHandler.Confirm)

	admin := v1.Group("/admin", authMw.RequireAuth, authMw.RequireRole(models.RoleAdmin))
	admin.GET("/stats", d.StatsHandler.Overview)
	admin.GET("/participants/search", d.SearchHandler.Search)
}
