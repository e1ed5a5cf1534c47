package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aicsoa/checkin-backend/internal/hash"
	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Participant{}, &models.User{}))
	return &repo.GormRepo{DB: db}
}

func seedUser(t *testing.T, r *repo.GormRepo, username, password, role string, active bool) {
	t.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         role,
		Active:       active,
	}
	require.NoError(t, r.DB.Create(&user).Error)
}

func seedParticipant(t *testing.T, r *repo.GormRepo, uid, email string) *models.Participant {
	t.Helper()

	p := models.Participant{
		UID:     uid,
		Name:    "Alice",
		Email:   email,
		Phone:   "9999999999",
		College: "SOA",
		Role:    "student",
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return &p
}
