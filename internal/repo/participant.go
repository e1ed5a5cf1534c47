package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aicsoa/checkin-backend/internal/models"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEmailExists         = errors.New("email already registered")
)

func (r *GormRepo) CreateParticipant(ctx context.Context, p *models.Participant) error {
	var existing models.Participant
	err := r.DB.WithContext(ctx).Where("email = ?", p.Email).First(&existing).Error
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) ParticipantByUID(ctx context.Context, uid string) (*models.Participant, error) {
	var p models.Participant
	if err := r.DB.WithContext(ctx).Where("uid = ?", uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}

// MarkCheckedIn flips checked_in in a single conditional update. The WHERE
// clause makes the store serialize concurrent confirmations: exactly one
// caller sees RowsAffected == 1 and its timestamp is the one that sticks.
func (r *GormRepo) MarkCheckedIn(ctx context.Context, uid string, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Participant{}).
		Where("uid = ? AND checked_in = ?", uid, false).
		Updates(map[string]interface{}{"checked_in": true, "checkin_time": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type Stats struct {
	Total     int64
	CheckedIn int64
	ByRole    map[string]int64
}

func (r *GormRepo) ParticipantStats(ctx context.Context) (*Stats, error) {
	db := r.DB.WithContext(ctx)

	var s Stats
	if err := db.Model(&models.Participant{}).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Participant{}).Where("checked_in = ?", true).Count(&s.CheckedIn).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Role  string
		Count int64
	}
	if err := db.Model(&models.Participant{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	s.ByRole = make(map[string]int64, len(rows))
	for _, row := range rows {
		s.ByRole[row.Role] = row.Count
	}
	return &s, nil
}

func (r *GormRepo) RecentCheckins(ctx context.Context, limit int) ([]models.Participant, error) {
	var out []models.Participant
	err := r.DB.WithContext(ctx).
		Where("checked_in = ?", true).
		Order("checkin_time DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
