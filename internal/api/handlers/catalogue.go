package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/boardgame-reviews/internal/models"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

type CategoryHandler struct {
	categoryService CategoryService
}

func NewCategoryHandler(categoryService CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "categories", categories)
}

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "users", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendOK(c, "user", user)
}
