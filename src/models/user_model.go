package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName         string   `json:"full_name"`
	Email            string   `json:"email" gorm:"uniqueIndex"`
	Password         string   `json:"-"`
	Role             UserRole `json:"role" gorm:"type:varchar(20);default:'student'"`
	Skills           []string `json:"skills" gorm:"serializer:json"`
	HallTicketNumber string   `json:"hall_ticket_number"`
	Mobile           string   `json:"mobile"`
	IsBlocked        bool     `json:"is_blocked"`
}

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

type UserDto struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Role             UserRole  `json:"role"`
	Skills           []string  `json:"skills"`
	HallTicketNumber string    `json:"hall_ticket_number,omitempty"`
	Mobile           string    `json:"mobile,omitempty"`
	IsBlocked        bool      `json:"is_blocked"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u User) ToDto() UserDto {
	return UserDto{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Role:             u.Role,
		Skills:           u.Skills,
		HallTicketNumber: u.HallTicketNumber,
		Mobile:           u.Mobile,
		IsBlocked:        u.IsBlocked,
		CreatedAt:        u.CreatedAt,
	}
}

// PasswordReset is a single-use token issued by the forgot-password flow.
type PasswordReset struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}
