package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is an admin-awarded badge, read-only for its holder.
type Achievement struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	BadgeType   string    `json:"badge_type"`
	AwardedAt   time.Time `json:"awarded_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}
