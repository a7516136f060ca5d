package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/boardgame-reviews/internal/apperrors"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"

	MessageInvalidSort  = "Invalid sort query"
	MessageInvalidOrder = "Invalid order query"
)

var sortableColumns = map[string]bool{
	"owner":         true,
	"title":         true,
	"review_id":     true,
	"category":      true,
	"votes":         true,
	"comment_count": true,
	"created_at":    true,
}

var orderDirections = map[string]bool{
	"asc":  false,
	"ASC":  false,
	"desc": true,
	"DESC": true,
}

// ReviewFilter holds the raw review listing parameters. A nil field means
// the parameter was not supplied.
type ReviewFilter struct {
	Category *string
	SortBy   *string
	Order    *string
}

// ReviewQuery is a validated set of listing options. Build one with
// ReviewFilter.Build; the zero value is not valid.
type ReviewQuery struct {
	category    string
	hasCategory bool
	sortColumn  string
	descending  bool
}

// Build validates sort_by, then order, then category.
func (f ReviewFilter) Build() (ReviewQuery, error) {
	q := ReviewQuery{sortColumn: DefaultSortBy, descending: true}

	if f.SortBy != nil {
		if !sortableColumns[*f.SortBy] {
			return ReviewQuery{}, apperrors.BadQuery(MessageInvalidSort)
		}
		q.sortColumn = *f.SortBy
	}

	if f.Order != nil {
		desc, ok := orderDirections[*f.Order]
		if !ok {
			return ReviewQuery{}, apperrors.BadQuery(MessageInvalidOrder)
		}
		q.descending = desc
	}

	if f.Category != nil {
		q.hasCategory = true
		q.category = *f.Category
	}

	return q, nil
}

func (q ReviewQuery) Category() (string, bool) {
	return q.category, q.hasCategory
}

func (q ReviewQuery) SortColumn() string {
	return q.sortColumn
}

func (q ReviewQuery) Descending() bool {
	return q.descending
}

// OrderBy returns the ORDER BY clause. comment_count is an output alias so
// it is left unqualified; everything else is qualified with the reviews table
// because comments shares review_id, votes and created_at.
func (q ReviewQuery) OrderBy() clause.OrderBy {
	primary := clause.Column{Table: "reviews", Name: q.sortColumn}
	if q.sortColumn == "comment_count" {
		primary = clause.Column{Name: q.sortColumn}
	}

	columns := []clause.OrderByColumn{{Column: primary, Desc: q.descending}}
	if q.sortColumn != "review_id" {
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Table: "reviews", Name: "review_id"},
			Desc:   q.descending,
		})
	}
	return clause.OrderBy{Columns: columns}
}

// Apply attaches the filter and ordering to tx. It issues no query.
func (q ReviewQuery) Apply(tx *gorm.DB) *gorm.DB {
	if q.hasCategory {
		tx = tx.Where("reviews.category = ?", q.category)
	}
	return tx.Clauses(q.OrderBy())
}
