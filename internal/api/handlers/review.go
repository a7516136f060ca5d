package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/internal/models"
	"github.com/princeprakhar/boardgame-reviews/internal/services"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
)

type ReviewService interface {
	ListReviews(ctx context.Context, filter services.ReviewFilter) ([]models.Review, error)
	GetReview(ctx context.Context, id int) (*models.Review, error)
	UpdateVotes(ctx context.Context, id int, req models.VoteUpdateRequest) (*models.Review, error)
}

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// optionalQuery distinguishes ?key= (present, empty) from a missing key.
func optionalQuery(c *gin.Context, key string) *string {
	if value, ok := c.GetQuery(key); ok {
		return &value
	}
	return nil
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	filter := services.ReviewFilter{
		Category: optionalQuery(c, "category"),
		SortBy:   optionalQuery(c, "sort_by"),
		Order:    optionalQuery(c, "order"),
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), filter)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "reviews", reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := services.ParseReviewID(c.Param("review_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "review", review)
}

func (h *ReviewHandler) PatchVotes(c *gin.Context) {
	reviewID, err := services.ParseReviewID(c.Param("review_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var req models.VoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, apperrors.InvalidPayload(utils.DescribeBindingError(err), err))
		return
	}

	review, err := h.reviewService.UpdateVotes(c.Request.Context(), reviewID, req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "review", review)
}
