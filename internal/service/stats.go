package service

import (
	"context"

	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/repo"
)

const recentCheckinsLimit = 10

type StatsService struct {
	Repo *repo.GormRepo
}

type StatsResult struct {
	TotalRegistrations int64                `json:"total_registrations"`
	CheckedIn          int64                `json:"checked_in"`
	Pending            int64                `json:"pending"`
	Roles              map[string]int64     `json:"roles"`
	RecentCheckins     []models.Participant `json:"recent_checkins"`
}

func (s *StatsService) Overview(ctx context.Context) (*StatsResult, error) {
	stats, err := s.Repo.ParticipantStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.RecentCheckins(ctx, recentCheckinsLimit)
	if err != nil {
		return nil, err
	}
	return &StatsResult{
		TotalRegistrations: stats.Total,
		CheckedIn:          stats.CheckedIn,
		Pending:            stats.Total - stats.CheckedIn,
		Roles:              stats.ByRole,
		RecentCheckins:     recent,
	}, nil
}
