package lib

import (
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// AutoMigrate runs all database migrations
func AutoMigrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Idea{},
		&models.Upvote{},
		&models.Suggestion{},
		&models.SuggestionUpvote{},
		&models.Connection{},
		&models.Notification{},
		&models.News{},
		&models.Achievement{},
		&models.Query{},
	)

	if err != nil {
		Log.Fatalw("Failed to migrate database", "err", err)
	}

	Log.Infow("Database migration completed")
}
