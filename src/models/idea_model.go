package models

import (
	"time"

	"gorm.io/gorm"
)

type Idea struct {
	gorm.Model
	Title       string     `json:"title"`
	Description string     `json:"description" gorm:"type:text"`
	Category    string     `json:"category"`
	Skills      []string   `json:"skills" gorm:"serializer:json"`
	Links       []string   `json:"links" gorm:"serializer:json"`
	Status      IdeaStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	IsFeatured  bool       `json:"is_featured"`
	Upvotes     int        `json:"upvotes"`
	Views       int        `json:"views"`
	UserID      uint       `json:"user_id" gorm:"index"`
	User        User       `json:"-" gorm:"foreignKey:UserID"`
}

type IdeaStatus string

const (
	IdeaStatusPending  IdeaStatus = "pending"
	IdeaStatusApproved IdeaStatus = "approved"
)

// Upvote holds at most one row per (idea, user) pair.
type Upvote struct {
	gorm.Model
	IdeaID uint `json:"idea_id" gorm:"uniqueIndex:idx_upvote_idea_user"`
	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_upvote_idea_user"`
}

type IdeaDto struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Skills      []string   `json:"skills"`
	Links       []string   `json:"links"`
	Status      IdeaStatus `json:"status"`
	IsFeatured  bool       `json:"is_featured"`
	Upvotes     int        `json:"upvotes"`
	Views       int        `json:"views"`
	AuthorID    uint       `json:"author_id"`
	AuthorName  string     `json:"author_name"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i Idea) ToDto(authorName string) IdeaDto {
	return IdeaDto{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		Skills:      i.Skills,
		Links:       i.Links,
		Status:      i.Status,
		IsFeatured:  i.IsFeatured,
		Upvotes:     i.Upvotes,
		Views:       i.Views,
		AuthorID:    i.UserID,
		AuthorName:  authorName,
		CreatedAt:   i.CreatedAt,
	}
}
