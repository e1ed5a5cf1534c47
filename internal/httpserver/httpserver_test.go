package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aicsoa/checkin-backend/internal/hash"
	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Participant{}, &models.User{}))

	jwtSecret := []byte("test-jwt-secret")
	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	deps := Deps{
		DB:                 db,
		AuthHandler:        &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: jwtSecret}},
		ParticipantHandler: &ParticipantHTTP{Svc: &service.RegistrationService{Repo: gormRepo}},
		CheckinHandler:     &CheckinHTTP{Svc: &service.CheckinService{Repo: gormRepo}},
		StatsHandler:       &StatsHTTP{Svc: &service.StatsService{Repo: gormRepo}},
		SearchHandler:      &SearchHTTP{Index: "participants"},
		JWTSecret:          jwtSecret,
	}
	Register(e, &deps)

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) seedUser(username, password, role string, active bool) {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	user := models.User{Username: username, PasswordHash: pwHash, Role: role, Active: active}
	require.NoError(env.T, env.DB.Create(&user).Error)
}

func (env *testEnv) doJSON(method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	env.T.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(env.T, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func (env *testEnv) login(username, password string) string {
	env.T.Helper()

	rec, body := env.doJSON(http.MethodPost, "/api/v1/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code)
	token, _ := body["access_token"].(string)
	require.NotEmpty(env.T, token)
	return token
}
