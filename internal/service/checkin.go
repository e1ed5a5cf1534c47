package service

import (
	"context"
	"errors"
	"time"

	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/mykafka"
	"github.com/aicsoa/checkin-backend/internal/repo"
)

const (
	StatusCheckedIn        = "checked_in"
	StatusAlreadyCheckedIn = "already_checked_in"

	checkinEventsTopic = "checkin_events"
)

type CheckinService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

type ScanResult struct {
	Valid            bool
	AlreadyCheckedIn bool
	Participant      *models.Participant
	CheckinTime      *time.Time
}

// Scan is read-only. An unknown uid is not an error: the caller gets a
// generic invalid result with no hint of whether the code is malformed or
// simply unregistered.
func (s *CheckinService) Scan(ctx context.Context, uid string) (*ScanResult, error) {
	if uid == "" {
		return nil, ErrValidation
	}

	p, err := s.Repo.ParticipantByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrParticipantNotFound) {
			return &ScanResult{Valid: false}, nil
		}
		return nil, err
	}

	return &ScanResult{
		Valid:            true,
		AlreadyCheckedIn: p.CheckedIn,
		Participant:      p,
		CheckinTime:      p.CheckinTime,
	}, nil
}

type ConfirmResult struct {
	Status      string
	CheckinTime time.Time
}

// Confirm is the only mutating transition. The conditional update in the
// repo layer makes it atomic: exactly one of any set of concurrent confirms
// wins, and later calls see already_checked_in with the winner's timestamp.
func (s *CheckinService) Confirm(ctx context.Context, uid string) (*ConfirmResult, error) {
	l := logging.FromContext(ctx).With("svc", "checkin.confirm", "uid", uid)

	if uid == "" {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	won, err := s.Repo.MarkCheckedIn(ctx, uid, now)
	if err != nil {
		l.Error("checkin_failed", "reason", "db_error", "error", err)
		return nil, err
	}

	if won {
		s.publish(ctx, uid, now)
		l.Info("checkin_confirmed")
		return &ConfirmResult{Status: StatusCheckedIn, CheckinTime: now}, nil
	}

	// Lost the race or the participant was already DONE. Either way the
	// stored timestamp is authoritative and must not be overwritten.
	p, err := s.Repo.ParticipantByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrParticipantNotFound) {
			l.Warn("checkin_failed", "reason", "unknown_uid")
		}
		return nil, err
	}

	res := &ConfirmResult{Status: StatusAlreadyCheckedIn}
	if p.CheckinTime != nil {
		res.CheckinTime = *p.CheckinTime
	}
	l.Info("checkin_repeated")
	return res, nil
}

func (s *CheckinService) publish(ctx context.Context, uid string, at time.Time) {
	if s.Producer == nil {
		return
	}
	event := map[string]interface{}{
		"type":         "participant_checked_in",
		"uid":          uid,
		"checkin_time": at,
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, checkinEventsTopic, uid, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "error", err)
	}
}
