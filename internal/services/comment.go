package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/internal/models"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &CommentService{db: db}
}

// ListComments returns the review's comments oldest first. A review with no
// comments yields an empty slice; a missing review is NotFound.
func (s *CommentService) ListComments(ctx context.Context, reviewID int) ([]models.Comment, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to check review: %w", ErrDatabaseQuery, err)
	}
	if count == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("No comments found for review_id: %d", reviewID))
	}

	comments := make([]models.Comment, 0)
	if err := s.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at ASC").
		Order("comment_id ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch comments: %w", ErrDatabaseQuery, err)
	}
	return comments, nil
}

// AddComment inserts a comment by req.Username on the review. Unknown users
// and reviews surface as foreign key violations from the insert itself.
func (s *CommentService) AddComment(ctx context.Context, reviewID int, req models.NewCommentRequest) (*models.Comment, error) {
	if req.Username == "" {
		return nil, apperrors.InvalidPayload("username is required", nil)
	}
	if req.Body == "" {
		return nil, apperrors.InvalidPayload("body is required", nil)
	}

	comment := models.Comment{
		Body:     req.Body,
		Author:   req.Username,
		ReviewID: reviewID,
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&comment).Error; err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ForeignKeyViolation(err)
		}
		return nil, fmt.Errorf("%w: failed to create comment: %w", ErrDatabaseQuery, err)
	}
	return &comment, nil
}
