package models

import (
	"gorm.io/gorm"
)

// Query is a help-desk ticket raised by a student and answered by an admin.
type Query struct {
	gorm.Model
	UserID        uint        `json:"user_id" gorm:"index"`
	Subject       string      `json:"subject"`
	Message       string      `json:"message" gorm:"type:text"`
	Status        QueryStatus `json:"status" gorm:"type:varchar(20);default:'open'"`
	AdminResponse string      `json:"admin_response" gorm:"type:text"`
	User          User        `json:"-" gorm:"foreignKey:UserID"`
}

type QueryStatus string

const (
	QueryStatusOpen     QueryStatus = "open"
	QueryStatusResolved QueryStatus = "resolved"
)
