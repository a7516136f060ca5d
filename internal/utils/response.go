package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
	"github.com/princeprakhar/boardgame-reviews/pkg/logger"
)

const RequestIDKey = "request_id"

type ErrorResponse struct {
	Message string `json:"message"`
}

// SendJSON writes data under a single top-level key, e.g. {"reviews": [...]}.
func SendJSON(c *gin.Context, status int, key string, data interface{}) {
	c.JSON(status, gin.H{key: data})
}

func SendOK(c *gin.Context, key string, data interface{}) {
	SendJSON(c, http.StatusOK, key, data)
}

// SendError classifies err and writes {"message": ...}. Server errors are
// logged in full; the client only sees the generic message.
func SendError(c *gin.Context, err error) {
	status, message := apperrors.Classify(err)

	entry := logger.WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     status,
		"kind":       apperrors.KindOf(err).String(),
		RequestIDKey: c.GetString(RequestIDKey),
	}).WithError(err)

	if status >= http.StatusInternalServerError {
		entry.Error("unhandled error")
	} else {
		entry.Debug("request rejected")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func SendRouteNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "route does not exist"})
}
