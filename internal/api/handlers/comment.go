package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/internal/models"
	"github.com/princeprakhar/boardgame-reviews/internal/services"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
)

type CommentService interface {
	ListComments(ctx context.Context, reviewID int) ([]models.Comment, error)
	AddComment(ctx context.Context, reviewID int, req models.NewCommentRequest) (*models.Comment, error)
}

type CommentHandler struct {
	commentService CommentService
}

func NewCommentHandler(commentService CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	reviewID, err := services.ParseReviewID(c.Param("review_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), reviewID)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "comments", comments)
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	reviewID, err := services.ParseReviewID(c.Param("review_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	var req models.NewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, apperrors.InvalidPayload(utils.DescribeBindingError(err), err))
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), reviewID, req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendJSON(c, http.StatusCreated, "comment", comment)
}
