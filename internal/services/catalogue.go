package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch categories: %w", ErrDatabaseQuery, err)
	}
	return categories, nil
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &UserService{db: db}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch users: %w", ErrDatabaseQuery, err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("No user found for username: %s", username))
		}
		return nil, fmt.Errorf("%w: failed to fetch user: %w", ErrDatabaseQuery, err)
	}
	return &user, nil
}
