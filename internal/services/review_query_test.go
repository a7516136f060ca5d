package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
)

func strPtr(s string) *string { return &s }

func TestReviewFilter_BuildDefaults(t *testing.T) {
	q, err := ReviewFilter{}.Build()
	require.NoError(t, err)

	_, hasCategory := q.Category()
	assert.False(t, hasCategory)
	assert.Equal(t, "created_at", q.SortColumn())
	assert.True(t, q.Descending())
}

func TestReviewFilter_BuildValidSortColumns(t *testing.T) {
	for _, col := range []string{"owner", "title", "review_id", "category", "votes", "comment_count", "created_at"} {
		t.Run(col, func(t *testing.T) {
			q, err := ReviewFilter{SortBy: strPtr(col)}.Build()
			require.NoError(t, err)
			assert.Equal(t, col, q.SortColumn())
		})
	}
}

func TestReviewFilter_BuildOrders(t *testing.T) {
	tests := []struct {
		order    string
		wantDesc bool
	}{
		{"asc", false},
		{"ASC", false},
		{"desc", true},
		{"DESC", true},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			q, err := ReviewFilter{Order: strPtr(tt.order)}.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, q.Descending())
		})
	}
}

func TestReviewFilter_BuildRejects(t *testing.T) {
	tests := []struct {
		name        string
		filter      ReviewFilter
		wantMessage string
	}{
		{"unknown sort", ReviewFilter{SortBy: strPtr("banana")}, "Invalid sort query"},
		{"historic typo", ReviewFilter{SortBy: strPtr("reivew_id")}, "Invalid sort query"},
		{"empty sort", ReviewFilter{SortBy: strPtr("")}, "Invalid sort query"},
		{"injection attempt", ReviewFilter{SortBy: strPtr("votes; DROP TABLE reviews")}, "Invalid sort query"},
		{"unknown order", ReviewFilter{Order: strPtr("nonsense")}, "Invalid order query"},
		{"mixed case order", ReviewFilter{Order: strPtr("Asc")}, "Invalid order query"},
		{"empty order", ReviewFilter{Order: strPtr("")}, "Invalid order query"},
		{"sort checked before order", ReviewFilter{SortBy: strPtr("banana"), Order: strPtr("nonsense")}, "Invalid sort query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.filter.Build()
			require.Error(t, err)
			assert.Equal(t, apperrors.KindBadQuery, apperrors.KindOf(err))
			_, message := apperrors.Classify(err)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestReviewFilter_BuildCategoryIsKeptVerbatim(t *testing.T) {
	raw := "social deduction'; DELETE FROM reviews; --"
	q, err := ReviewFilter{Category: strPtr(raw)}.Build()
	require.NoError(t, err)

	category, ok := q.Category()
	assert.True(t, ok)
	assert.Equal(t, raw, category)
}

func TestReviewQuery_OrderBy(t *testing.T) {
	q, err := ReviewFilter{SortBy: strPtr("comment_count"), Order: strPtr("asc")}.Build()
	require.NoError(t, err)

	assert.Equal(t, []clause.OrderByColumn{
		{Column: clause.Column{Name: "comment_count"}, Desc: false},
		{Column: clause.Column{Table: "reviews", Name: "review_id"}, Desc: false},
	}, q.OrderBy().Columns)

	q, err = ReviewFilter{SortBy: strPtr("review_id")}.Build()
	require.NoError(t, err)

	assert.Equal(t, []clause.OrderByColumn{
		{Column: clause.Column{Table: "reviews", Name: "review_id"}, Desc: true},
	}, q.OrderBy().Columns)
}
