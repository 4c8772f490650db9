package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/WhiskyReview/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, name string, displayName string, email string) (*model.User, error) {
	user := model.User{
		UUID:        uuid.New(),
		Username:    name,
		DisplayName: displayName,
		Email:       email,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}
