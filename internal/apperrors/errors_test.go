package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad sort query keeps its message",
			err:         BadQuery("Invalid sort query"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid sort query",
		},
		{
			name:        "bad order query keeps its message",
			err:         BadQuery("Invalid order query"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid order query",
		},
		{
			name:        "invalid id",
			err:         InvalidID("nonsense"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "invalid text representation from postgres",
			err:         &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type integer: "nonsense"`},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "invalid payload",
			err:         InvalidPayload("username is required", nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "not null violation from postgres",
			err:         fmt.Errorf("insert comment: %w", &pgconn.PgError{Code: "23502"}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "not found interpolates id",
			err:         NotFound("No review found for review_id: 1000"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "No review found for review_id: 1000",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("get review: %w", NotFound("No comments found for review_id: 7")),
			wantStatus:  http.StatusNotFound,
			wantMessage: "No comments found for review_id: 7",
		},
		{
			name:        "foreign key violation kind",
			err:         ForeignKeyViolation(errors.New("boom")),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "raw foreign key violation from postgres",
			err:         &pgconn.PgError{Code: "23503"},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "undefined column from postgres",
			err:         &pgconn.PgError{Code: "42703"},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "unknown postgres error is internal",
			err:         &pgconn.PgError{Code: "53300", Message: "too many connections"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "plain error does not leak",
			err:         errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	// An invalid payload wrapping an FK violation is still a bad request.
	err := InvalidPayload("bad", &pgconn.PgError{Code: "23503"})

	status, message := Classify(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", message)
}

func TestError_UnwrapAndKind(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503"}
	err := fmt.Errorf("add comment: %w", ForeignKeyViolation(cause))

	assert.Equal(t, KindForeignKeyViolation, KindOf(err))
	assert.True(t, IsForeignKeyViolation(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnclassified, KindOf(errors.New("x")))
	assert.Equal(t, "not_found", KindNotFound.String())
}
