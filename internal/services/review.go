package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/internal/models"
)

var ErrDatabaseQuery = errors.New("database query failed")

const (
	reviewListColumns = "reviews.review_id, reviews.title, reviews.designer, reviews.owner, " +
		"reviews.review_img_url, reviews.category, reviews.created_at, reviews.votes"
	commentCountColumn = "COUNT(comments.comment_id) AS comment_count"
	joinComments       = "LEFT JOIN comments ON comments.review_id = reviews.review_id"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ReviewService{db: db}
}

// ParseReviewID accepts base-10 integers that fit the review_id column.
func ParseReviewID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperrors.InvalidID(raw)
	}
	return int(id), nil
}

func reviewNotFound(id int) error {
	return apperrors.NotFound(fmt.Sprintf("No review found for review_id: %d", id))
}

// ListReviews returns reviews with their comment counts, filtered and
// ordered as described by filter. review_body is not selected.
func (s *ReviewService) ListReviews(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	query, err := filter.Build()
	if err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0)
	tx := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select(reviewListColumns + ", " + commentCountColumn).
		Joins(joinComments).
		Group("reviews.review_id")

	if err := query.Apply(tx).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch reviews: %w", ErrDatabaseQuery, err)
	}
	return reviews, nil
}

// GetReview returns a single review including review_body and comment_count.
func (s *ReviewService) GetReview(ctx context.Context, id int) (*models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, "+commentCountColumn).
		Joins(joinComments).
		Where("reviews.review_id = ?", id).
		Group("reviews.review_id").
		Take(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewNotFound(id)
		}
		return nil, fmt.Errorf("%w: failed to fetch review: %w", ErrDatabaseQuery, err)
	}
	return &review, nil
}

// UpdateVotes adds req.IncVotes to the review's votes in a single
// conditional statement and returns the updated row.
func (s *ReviewService) UpdateVotes(ctx context.Context, id int, req models.VoteUpdateRequest) (*models.Review, error) {
	if req.IncVotes == nil {
		return nil, apperrors.InvalidPayload("inc_votes is required", nil)
	}

	var review models.Review
	result := s.db.WithContext(ctx).
		Model(&review).
		Clauses(clause.Returning{}).
		Where("review_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", *req.IncVotes))
	if result.Error != nil {
		return nil, fmt.Errorf("%w: failed to update votes: %w", ErrDatabaseQuery, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, reviewNotFound(id)
	}
	return &review, nil
}
