package models

import (
	"gorm.io/gorm"
)

// Notification with a nil UserID is a broadcast addressed to all users.
type Notification struct {
	gorm.Model
	UserID      *uint                `json:"user_id" gorm:"index"`
	Title       string               `json:"title"`
	Description string               `json:"description" gorm:"type:text"`
	Type        NotificationType     `json:"type" gorm:"type:varchar(20);default:'general'"`
	Priority    NotificationPriority `json:"priority" gorm:"type:varchar(20);default:'low'"`
}

type NotificationType string

const (
	NotificationTypeNews         NotificationType = "news"
	NotificationTypeAnnouncement NotificationType = "announcement"
	NotificationTypeUpdate       NotificationType = "update"
	NotificationTypeGeneral      NotificationType = "general"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// FeedTypes are the notification types surfaced on the public updates feed.
var FeedTypes = []NotificationType{
	NotificationTypeNews,
	NotificationTypeAnnouncement,
	NotificationTypeUpdate,
}
