package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/repo"
)

func TestCheckinService_Confirm_Idempotent(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	seedParticipant(t, r, "AIC26-ABCDEF", "alice@example.com")
	svc := &CheckinService{Repo: r}
	ctx := context.Background()

	first, err := svc.Confirm(ctx, "AIC26-ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, first.Status)
	assert.False(t, first.CheckinTime.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), first.CheckinTime, 5*time.Second)

	second, err := svc.Confirm(ctx, "AIC26-ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyCheckedIn, second.Status)

	// The original timestamp must survive the repeat confirm untouched.
	assert.True(t, second.CheckinTime.Equal(first.CheckinTime))

	var stored models.Participant
	require.NoError(t, r.DB.Where("uid = ?", "AIC26-ABCDEF").First(&stored).Error)
	assert.True(t, stored.CheckedIn)
	require.NotNil(t, stored.CheckinTime)
	assert.True(t, stored.CheckinTime.Equal(first.CheckinTime))
}

func TestCheckinService_Confirm_UnknownUID(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	seedParticipant(t, r, "AIC26-ABCDEF", "alice@example.com")
	svc := &CheckinService{Repo: r}

	res, err := svc.Confirm(context.Background(), "AIC26-000000")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, repo.ErrParticipantNotFound)

	// Nothing was mutated.
	var count int64
	require.NoError(t, r.DB.Model(&models.Participant{}).Where("checked_in = ?", true).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckinService_Confirm_Validation(t *testing.T) {
	t.Parallel()

	svc := &CheckinService{Repo: newTestRepo(t)}

	res, err := svc.Confirm(context.Background(), "")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckinService_Scan_ReadOnly(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	seeded := seedParticipant(t, r, "AIC26-ABCDEF", "alice@example.com")
	svc := &CheckinService{Repo: r}
	ctx := context.Background()

	var before models.Participant
	require.NoError(t, r.DB.Where("uid = ?", "AIC26-ABCDEF").First(&before).Error)

	res, err := svc.Scan(ctx, "AIC26-ABCDEF")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.False(t, res.AlreadyCheckedIn)
	assert.Nil(t, res.CheckinTime)
	require.NotNil(t, res.Participant)
	assert.Equal(t, seeded.UID, res.Participant.UID)
	assert.Equal(t, seeded.Email, res.Participant.Email)

	var after models.Participant
	require.NoError(t, r.DB.Where("uid = ?", "AIC26-ABCDEF").First(&after).Error)
	assert.Equal(t, before, after)
}

func TestCheckinService_Scan_AfterConfirm(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	seedParticipant(t, r, "AIC26-ABCDEF", "alice@example.com")
	svc := &CheckinService{Repo: r}
	ctx := context.Background()

	confirmed, err := svc.Confirm(ctx, "AIC26-ABCDEF")
	require.NoError(t, err)

	res, err := svc.Scan(ctx, "AIC26-ABCDEF")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.True(t, res.AlreadyCheckedIn)
	require.NotNil(t, res.CheckinTime)
	assert.True(t, res.CheckinTime.Equal(confirmed.CheckinTime))
}

func TestCheckinService_Scan_UnknownUID(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CheckinService{Repo: r}

	// Same generic result for a well-formed unknown code and a malformed
	// one; the caller cannot tell the two apart.
	for _, uid := range []string{"AIC26-FFFFFF", "garbage"} {
		res, err := svc.Scan(context.Background(), uid)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Nil(t, res.Participant)
	}
}

func TestCheckinService_Scan_Validation(t *testing.T) {
	t.Parallel()

	svc := &CheckinService{Repo: newTestRepo(t)}

	res, err := svc.Scan(context.Background(), "")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}
