package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// notifyUser inserts a targeted notification. Failures are logged, not
// propagated: a lost notification never rolls back the moderation action.
func notifyUser(userID uint, title, description string) {
	notification := models.Notification{
		UserID:      &userID,
		Title:       title,
		Description: description,
		Type:        models.NotificationTypeAnnouncement,
		Priority:    models.NotificationPriorityLow,
	}

	if err := lib.DB.Create(&notification).Error; err != nil {
		lib.Log.Errorw("Failed to create notification", "user_id", userID, "err", err)
	}
}

// GetAdminStats returns entity counts plus the five most recent rows of each
// entity for the dashboard
func GetAdminStats(c *fiber.Ctx) error {
	var userCount, ideaCount, notificationCount, newsCount int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &userCount},
		{&models.Idea{}, &ideaCount},
		{&models.Notification{}, &notificationCount},
		{&models.News{}, &newsCount},
	}
	for _, count := range counts {
		if err := lib.DB.Model(count.model).Count(count.dest).Error; err != nil {
			lib.Log.Errorw("Failed to count rows", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching stats",
			})
		}
	}

	var recentUsers []models.User
	var recentIdeas []models.Idea
	var recentNotifications []models.Notification
	var recentNews []models.News

	lib.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)
	lib.DB.Order("created_at DESC").Limit(5).Find(&recentIdeas)
	lib.DB.Order("created_at DESC").Limit(5).Find(&recentNotifications)
	lib.DB.Order("created_at DESC").Limit(5).Find(&recentNews)

	userDtos := make([]models.UserDto, 0, len(recentUsers))
	for _, u := range recentUsers {
		userDtos = append(userDtos, u.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"counts": fiber.Map{
			"users":         userCount,
			"ideas":         ideaCount,
			"notifications": notificationCount,
			"news":          newsCount,
		},
		"recent": fiber.Map{
			"users":         userDtos,
			"ideas":         recentIdeas,
			"notifications": recentNotifications,
			"news":          recentNews,
		},
	})
}

// AdminListUsers returns every profile for the user-management table
func AdminListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := lib.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		lib.Log.Errorw("Failed to list users", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching users",
		})
	}

	userDtos := make([]models.UserDto, 0, len(users))
	for _, u := range users {
		userDtos = append(userDtos, u.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(userDtos)
}

// BlockUser sets or clears a user's blocked flag. Active tokens are rejected
// by the auth middleware on their next request.
func BlockUser(c *fiber.Ctx) error {
	userIDStr := c.Params("id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	var req struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var user models.User
	err = lib.DB.First(&user, uint(userID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		lib.Log.Errorw("Failed to load user", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	if err := lib.DB.Model(&user).Update("is_blocked", req.Blocked).Error; err != nil {
		lib.Log.Errorw("Failed to update blocked flag", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update user",
		})
	}

	message := "User unblocked"
	if req.Blocked {
		message = "User blocked"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}

// DeleteUser removes a user and everything they own: ideas with their full
// threads, authored suggestions and upvotes, connections in both directions,
// achievements, queries, and targeted notifications
func DeleteUser(c *fiber.Ctx) error {
	userIDStr := c.Params("id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	var user models.User
	err = lib.DB.First(&user, uint(userID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		lib.Log.Errorw("Failed to load user", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	// Hard deletes throughout: soft-deleted rows would keep the email and
	// the unique upvote and edge indexes occupied.
	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		var ideaIDs []uint
		if err := tx.Model(&models.Idea{}).Where("user_id = ?", user.ID).
			Pluck("id", &ideaIDs).Error; err != nil {
			return err
		}

		if len(ideaIDs) > 0 {
			var suggestionIDs []uint
			if err := tx.Model(&models.Suggestion{}).Where("idea_id IN ?", ideaIDs).
				Pluck("id", &suggestionIDs).Error; err != nil {
				return err
			}
			if len(suggestionIDs) > 0 {
				if err := tx.Unscoped().Where("suggestion_id IN ?", suggestionIDs).
					Delete(&models.SuggestionUpvote{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Where("idea_id IN ?", ideaIDs).Delete(&models.Suggestion{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("idea_id IN ?", ideaIDs).Delete(&models.Upvote{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", ideaIDs).Delete(&models.Idea{}).Error; err != nil {
				return err
			}
		}

		// Suggestions the user authored on other ideas take third-party
		// upvote rows down with them.
		var authoredSuggestionIDs []uint
		if err := tx.Model(&models.Suggestion{}).Where("user_id = ?", user.ID).
			Pluck("id", &authoredSuggestionIDs).Error; err != nil {
			return err
		}
		if len(authoredSuggestionIDs) > 0 {
			if err := tx.Unscoped().Where("suggestion_id IN ?", authoredSuggestionIDs).
				Delete(&models.SuggestionUpvote{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", authoredSuggestionIDs).
				Delete(&models.Suggestion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.SuggestionUpvote{}).Error; err != nil {
			return err
		}

		// Removing the user's upvotes on surviving ideas has to keep each
		// idea's counter equal to its row count. The unique (idea, user)
		// index means at most one vote per idea, so a bulk decrement works.
		var upvotedIdeaIDs []uint
		if err := tx.Model(&models.Upvote{}).Where("user_id = ?", user.ID).
			Pluck("idea_id", &upvotedIdeaIDs).Error; err != nil {
			return err
		}
		if len(upvotedIdeaIDs) > 0 {
			if err := tx.Model(&models.Idea{}).Where("id IN ?", upvotedIdeaIDs).
				Update("upvotes", gorm.Expr("upvotes - 1")).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Upvote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("follower_id = ? OR following_id = ?", user.ID, user.ID).
			Delete(&models.Connection{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Achievement{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Query{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		lib.Log.Errorw("Failed to delete user", "user_id", user.ID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// SetIdeaStatus moves an idea between pending and approved. Approval sends
// the owner a best-effort notification.
func SetIdeaStatus(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	var req struct {
		Status models.IdeaStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Status != models.IdeaStatusPending && req.Status != models.IdeaStatusApproved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status must be pending or approved",
		})
	}

	var idea models.Idea
	err = lib.DB.First(&idea, uint(ideaID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Idea not found",
			})
		}
		lib.Log.Errorw("Failed to load idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	approving := req.Status == models.IdeaStatusApproved && idea.Status != models.IdeaStatusApproved

	if err := lib.DB.Model(&idea).Update("status", req.Status).Error; err != nil {
		lib.Log.Errorw("Failed to update idea status", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update idea",
		})
	}

	if approving {
		notifyUser(idea.UserID, "Project Approved",
			"Congratulations! Your project has been approved by the admin.")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Idea status updated",
		"status":  req.Status,
	})
}

// SetIdeaFeatured toggles the featured flag on an idea, independent of its
// approval status. Featuring sends the owner a best-effort notification.
func SetIdeaFeatured(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var idea models.Idea
	err = lib.DB.First(&idea, uint(ideaID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Idea not found",
			})
		}
		lib.Log.Errorw("Failed to load idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	featuring := req.Featured && !idea.IsFeatured

	if err := lib.DB.Model(&idea).Update("is_featured", req.Featured).Error; err != nil {
		lib.Log.Errorw("Failed to update featured flag", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update idea",
		})
	}

	if featuring {
		notifyUser(idea.UserID, "Project Featured",
			"Congratulations! Your project has been featured by the admin!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Idea updated",
		"featured": req.Featured,
	})
}

// AdminDeleteIdea removes an idea together with its suggestions, suggestion
// upvotes, and upvotes in one transaction
func AdminDeleteIdea(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	var idea models.Idea
	err = lib.DB.First(&idea, uint(ideaID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Idea not found",
			})
		}
		lib.Log.Errorw("Failed to load idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		var suggestionIDs []uint
		if err := tx.Model(&models.Suggestion{}).Where("idea_id = ?", idea.ID).
			Pluck("id", &suggestionIDs).Error; err != nil {
			return err
		}
		if len(suggestionIDs) > 0 {
			if err := tx.Unscoped().Where("suggestion_id IN ?", suggestionIDs).
				Delete(&models.SuggestionUpvote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("idea_id = ?", idea.ID).Delete(&models.Suggestion{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("idea_id = ?", idea.ID).Delete(&models.Upvote{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&idea).Error
	})
	if err != nil {
		lib.Log.Errorw("Failed to delete idea", "idea_id", idea.ID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete idea",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Idea deleted successfully",
	})
}

// SendNotification dispatches an announcement to one user or, with target
// "all", broadcasts it as a single row with no addressee
func SendNotification(c *fiber.Ctx) error {
	var req struct {
		Target      string `json:"target" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Target, title, and message are required",
		})
	}

	notification := models.Notification{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.NotificationTypeAnnouncement,
		Priority:    models.NotificationPriorityLow,
	}

	if req.Target != "all" {
		targetID, err := strconv.ParseUint(req.Target, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Target must be 'all' or a user ID",
			})
		}

		var target models.User
		if err := lib.DB.First(&target, uint(targetID)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "User not found",
				})
			}
			lib.Log.Errorw("Failed to load user", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}
		notification.UserID = &target.ID
	}

	if err := lib.DB.Create(&notification).Error; err != nil {
		lib.Log.Errorw("Failed to create notification", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send notification",
		})
	}

	message := "Notification sent to user"
	if req.Target == "all" {
		message = "Broadcast sent to all users"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      message,
		"notification": notification,
	})
}

// AdminListNotifications returns every notification newest-first
func AdminListNotifications(c *fiber.Ctx) error {
	var notifications []models.Notification
	err := lib.DB.Order("created_at DESC, id DESC").Find(&notifications).Error
	if err != nil {
		lib.Log.Errorw("Failed to list notifications", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// AdminDeleteNotification hard-deletes a notification
func AdminDeleteNotification(c *fiber.Ctx) error {
	notificationIDStr := c.Params("id")
	notificationID, err := strconv.ParseUint(notificationIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	result := lib.DB.Unscoped().Delete(&models.Notification{}, uint(notificationID))
	if result.Error != nil {
		lib.Log.Errorw("Failed to delete notification", "err", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete notification",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Notification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification deleted successfully",
	})
}

// CreateNews publishes a news article
func CreateNews(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and content are required",
		})
	}

	article := models.News{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := lib.DB.Create(&article).Error; err != nil {
		lib.Log.Errorw("Failed to create news", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to publish news",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateNews edits an existing news article
func UpdateNews(c *fiber.Ctx) error {
	newsIDStr := c.Params("id")
	newsID, err := strconv.ParseUint(newsIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid news ID format",
		})
	}

	var req struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and content are required",
		})
	}

	var article models.News
	err = lib.DB.First(&article, uint(newsID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "News article not found",
			})
		}
		lib.Log.Errorw("Failed to load news article", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	article.Title = req.Title
	article.Content = req.Content

	if err := lib.DB.Save(&article).Error; err != nil {
		lib.Log.Errorw("Failed to update news", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update news",
		})
	}

	return c.Status(fiber.StatusOK).JSON(article)
}

// AdminDeleteNews removes a news article
func AdminDeleteNews(c *fiber.Ctx) error {
	newsIDStr := c.Params("id")
	newsID, err := strconv.ParseUint(newsIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid news ID format",
		})
	}

	result := lib.DB.Unscoped().Delete(&models.News{}, uint(newsID))
	if result.Error != nil {
		lib.Log.Errorw("Failed to delete news", "err", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete news",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "News article not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "News deleted successfully",
	})
}

// AwardAchievement grants a badge to a user
func AwardAchievement(c *fiber.Ctx) error {
	var req struct {
		UserID      uint   `json:"user_id" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		BadgeType   string `json:"badge_type" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User, title, and badge type are required",
		})
	}

	var target models.User
	if err := lib.DB.First(&target, req.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		lib.Log.Errorw("Failed to load user", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	achievement := models.Achievement{
		UserID:      target.ID,
		Title:       req.Title,
		Description: req.Description,
		BadgeType:   req.BadgeType,
		AwardedAt:   time.Now(),
	}

	if err := lib.DB.Create(&achievement).Error; err != nil {
		lib.Log.Errorw("Failed to create achievement", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to award achievement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(achievement)
}

// AdminListQueries returns all help requests newest-first
func AdminListQueries(c *fiber.Ctx) error {
	var queries []models.Query
	err := lib.DB.Preload("User").Order("created_at DESC").Find(&queries).Error
	if err != nil {
		lib.Log.Errorw("Failed to list queries", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching help requests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(queries)
}

// RespondQuery records an admin response on a help request and resolves it
func RespondQuery(c *fiber.Ctx) error {
	queryIDStr := c.Params("id")
	queryID, err := strconv.ParseUint(queryIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query ID format",
		})
	}

	var req struct {
		Response string `json:"response" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Response is required",
		})
	}

	var query models.Query
	err = lib.DB.First(&query, uint(queryID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Help request not found",
			})
		}
		lib.Log.Errorw("Failed to load query", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	query.AdminResponse = req.Response
	query.Status = models.QueryStatusResolved

	if err := lib.DB.Save(&query).Error; err != nil {
		lib.Log.Errorw("Failed to respond to query", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to submit response",
		})
	}

	return c.Status(fiber.StatusOK).JSON(query)
}
