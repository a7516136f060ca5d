package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/boardgame-reviews/internal/services"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
)

type Endpoint struct {
	Description string      `json:"description"`
	Queries     []string    `json:"queries,omitempty"`
	Body        interface{} `json:"body,omitempty"`
}

var endpoints = map[string]Endpoint{
	"GET /api": {
		Description: "serves a description of every available endpoint",
	},
	"GET /api/categories": {
		Description: "serves an array of all categories",
	},
	"GET /api/reviews": {
		Description: "serves an array of all reviews with their comment_count; sort_by defaults to " +
			services.DefaultSortBy + " and order to " + services.DefaultOrder,
		Queries:     []string{"category", "sort_by", "order"},
	},
	"GET /api/reviews/:review_id": {
		Description: "serves a single review including review_body and comment_count",
	},
	"PATCH /api/reviews/:review_id": {
		Description: "adds inc_votes to the review's votes and serves the updated review",
		Body:        map[string]interface{}{"inc_votes": 1},
	},
	"GET /api/reviews/:review_id/comments": {
		Description: "serves the review's comments, oldest first",
	},
	"POST /api/reviews/:review_id/comments": {
		Description: "adds a comment to the review and serves it",
		Body:        map[string]string{"username": "mallionaire", "body": "Great game!"},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user",
	},
}

func GetEndpoints(c *gin.Context) {
	utils.SendOK(c, "endpoints", endpoints)
}
