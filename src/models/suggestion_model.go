package models

import (
	"time"

	"gorm.io/gorm"
)

// Suggestion is a comment-like contribution on an idea. The idea owner may
// not author suggestions on their own idea.
type Suggestion struct {
	gorm.Model
	IdeaID  uint   `json:"idea_id" gorm:"index"`
	UserID  uint   `json:"user_id" gorm:"index"`
	Content string `json:"content" gorm:"type:text"`
	User    User   `json:"-" gorm:"foreignKey:UserID"`
}

// SuggestionUpvote holds at most one row per (suggestion, user) pair and
// toggles on repeated upvote calls.
type SuggestionUpvote struct {
	gorm.Model
	SuggestionID uint `json:"suggestion_id" gorm:"uniqueIndex:idx_sugg_upvote"`
	UserID       uint `json:"user_id" gorm:"uniqueIndex:idx_sugg_upvote"`
}

type SuggestionDto struct {
	ID          uint      `json:"id"`
	IdeaID      uint      `json:"idea_id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Content     string    `json:"content"`
	Upvotes     int       `json:"upvotes"`
	Upvoters    []string  `json:"upvoters"`
	UpvotedByMe bool      `json:"upvoted_by_me"`
	CreatedAt   time.Time `json:"created_at"`
}
