package models

import (
	"time"
)

type Review struct {
	ReviewID     int       `json:"review_id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Designer     string    `json:"designer"`
	Owner        string    `json:"owner" gorm:"not null"`
	ReviewImgURL string    `json:"review_img_url" gorm:"default:'https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg'"`
	ReviewBody   string    `json:"review_body,omitempty" gorm:"not null"`
	Category     string    `json:"category" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes" gorm:"not null;default:0"`

	// Only populated by queries that join comments.
	CommentCount *int64 `json:"comment_count,omitempty" gorm:"->;-:migration"`

	// Relations
	OwnerUser   User     `json:"-" gorm:"foreignKey:Owner;references:Username"`
	CategoryRef Category `json:"-" gorm:"foreignKey:Category;references:Slug"`
}

type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null"`
	ReviewID  int       `json:"review_id" gorm:"not null;index"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	AuthorUser User   `json:"-" gorm:"foreignKey:Author;references:Username"`
	Review     Review `json:"-" gorm:"foreignKey:ReviewID;references:ReviewID;constraint:OnDelete:CASCADE"`
}

// NewCommentRequest is the POST /api/reviews/:review_id/comments body.
// Unknown keys are ignored.
type NewCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// VoteUpdateRequest is the PATCH /api/reviews/:review_id body.
type VoteUpdateRequest struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}
