package models

import (
	"time"

	"gorm.io/gorm"
)

// News is a global, admin-authored announcement.
type News struct {
	gorm.Model
	Title   string `json:"title"`
	Content string `json:"content" gorm:"type:text"`
}

// FeedItem is one entry of the unified news/notifications feed. Source is
// either "news" or "notification".
type FeedItem struct {
	ID          uint                 `json:"id"`
	Source      string               `json:"source"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Priority    NotificationPriority `json:"priority,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

const (
	FeedSourceNews         = "news"
	FeedSourceNotification = "notification"
)
