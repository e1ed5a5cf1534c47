package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aicsoa/checkin-backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

func (r *GormRepo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
