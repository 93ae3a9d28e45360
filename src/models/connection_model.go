package models

import (
	"gorm.io/gorm"
)

// Connection is a directed follow edge. A user never follows themselves and
// at most one edge exists per (follower, following) pair.
type Connection struct {
	gorm.Model
	FollowerID  uint `json:"follower_id" gorm:"uniqueIndex:idx_conn_edge"`
	FollowingID uint `json:"following_id" gorm:"uniqueIndex:idx_conn_edge"`
	Follower    User `json:"-" gorm:"foreignKey:FollowerID"`
	Following   User `json:"-" gorm:"foreignKey:FollowingID"`
}
