package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetSuggestions returns an idea's suggestion thread most-recent-first, with
// upvote counts, upvoter display names, and the caller's own upvote state
func GetSuggestions(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var idea models.Idea
	if err := lib.DB.First(&idea, uint(ideaID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Idea not found",
			})
		}
		lib.Log.Errorw("Failed to load idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading idea",
		})
	}

	var suggestions []models.Suggestion
	err = lib.DB.Preload("User").
		Where("idea_id = ?", idea.ID).
		Order("created_at DESC, id DESC").
		Find(&suggestions).Error
	if err != nil {
		lib.Log.Errorw("Failed to list suggestions", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching suggestions",
		})
	}

	suggestionIDs := make([]uint, 0, len(suggestions))
	for _, s := range suggestions {
		suggestionIDs = append(suggestionIDs, s.ID)
	}

	var upvotes []models.SuggestionUpvote
	if len(suggestionIDs) > 0 {
		if err := lib.DB.Where("suggestion_id IN ?", suggestionIDs).Find(&upvotes).Error; err != nil {
			lib.Log.Errorw("Failed to list suggestion upvotes", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching suggestions",
			})
		}
	}

	upvoterIDs := make([]uint, 0, len(upvotes))
	for _, u := range upvotes {
		upvoterIDs = append(upvoterIDs, u.UserID)
	}
	names, err := lib.ProfileNames(upvoterIDs)
	if err != nil {
		lib.Log.Errorw("Failed to resolve upvoters", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching suggestions",
		})
	}

	counts := make(map[uint]int)
	upvoters := make(map[uint][]string)
	mine := make(map[uint]bool)
	for _, u := range upvotes {
		counts[u.SuggestionID]++
		name := names[u.UserID]
		if name == "" {
			name = "Unknown"
		}
		upvoters[u.SuggestionID] = append(upvoters[u.SuggestionID], name)
		if u.UserID == user.ID {
			mine[u.SuggestionID] = true
		}
	}

	dtos := make([]models.SuggestionDto, 0, len(suggestions))
	for _, s := range suggestions {
		dtos = append(dtos, models.SuggestionDto{
			ID:          s.ID,
			IdeaID:      s.IdeaID,
			AuthorID:    s.UserID,
			AuthorName:  s.User.FullName,
			Content:     s.Content,
			Upvotes:     counts[s.ID],
			Upvoters:    upvoters[s.ID],
			UpvotedByMe: mine[s.ID],
			CreatedAt:   s.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dtos)
}

// CreateSuggestion adds a suggestion to an idea. Idea owners may not suggest
// on their own ideas.
func CreateSuggestion(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	var req struct {
		Content string `json:"content"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Suggestion content cannot be empty",
		})
	}

	user := c.Locals("user").(models.User)

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
			"message": "Error loading idea",
		})
	}

	if idea.UserID == user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Project owners cannot submit suggestions on their own project",
		})
	}

	newSuggestion := models.Suggestion{
		IdeaID:  idea.ID,
		UserID:  user.ID,
		Content: req.Content,
	}

	if err := lib.DB.Create(&newSuggestion).Error; err != nil {
		lib.Log.Errorw("Failed to create suggestion", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add suggestion",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuggestionDto{
		ID:         newSuggestion.ID,
		IdeaID:     newSuggestion.IdeaID,
		AuthorID:   user.ID,
		AuthorName: user.FullName,
		Content:    newSuggestion.Content,
		CreatedAt:  newSuggestion.CreatedAt,
	})
}

// DeleteSuggestion removes a suggestion authored by the caller, together
// with its upvotes
func DeleteSuggestion(c *fiber.Ctx) error {
	suggestionIDStr := c.Params("id")
	suggestionID, err := strconv.ParseUint(suggestionIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid suggestion ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var suggestion models.Suggestion
	err = lib.DB.First(&suggestion, uint(suggestionID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Suggestion not found",
			})
		}
		lib.Log.Errorw("Failed to load suggestion", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading suggestion",
		})
	}

	if suggestion.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You are not authorized to delete this suggestion",
		})
	}

	// Hard deletes: soft-deleted rows would keep tripping the unique
	// upvote index.
	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("suggestion_id = ?", suggestion.ID).
			Delete(&models.SuggestionUpvote{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&suggestion).Error
	})
	if err != nil {
		lib.Log.Errorw("Failed to delete suggestion", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete suggestion",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Suggestion deleted successfully",
	})
}

// UpvoteSuggestion toggles the caller's upvote on a suggestion: the first
// call adds it, the second removes it
func UpvoteSuggestion(c *fiber.Ctx) error {
	suggestionIDStr := c.Params("id")
	suggestionID, err := strconv.ParseUint(suggestionIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid suggestion ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var suggestion models.Suggestion
	err = lib.DB.First(&suggestion, uint(suggestionID)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Suggestion not found",
			})
		}
		lib.Log.Errorw("Failed to load suggestion", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading suggestion",
		})
	}

	var existing models.SuggestionUpvote
	err = lib.DB.Where("suggestion_id = ? AND user_id = ?", suggestion.ID, user.ID).
		First(&existing).Error

	upvoted := false
	if err == nil {
		// Hard delete so a later re-upvote does not hit the unique index
		if err := lib.DB.Unscoped().Delete(&existing).Error; err != nil {
			lib.Log.Errorw("Failed to remove suggestion upvote", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to remove upvote",
			})
		}
	} else if err == gorm.ErrRecordNotFound {
		newUpvote := models.SuggestionUpvote{
			SuggestionID: suggestion.ID,
			UserID:       user.ID,
		}
		if err := lib.DB.Create(&newUpvote).Error; err != nil {
			lib.Log.Errorw("Failed to create suggestion upvote", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to upvote suggestion",
			})
		}
		upvoted = true
	} else {
		lib.Log.Errorw("Failed to check suggestion upvote", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error checking upvote status",
		})
	}

	var count int64
	if err := lib.DB.Model(&models.SuggestionUpvote{}).
		Where("suggestion_id = ?", suggestion.ID).Count(&count).Error; err != nil {
		lib.Log.Errorw("Failed to count suggestion upvotes", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error counting upvotes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"upvoted": upvoted,
		"upvotes": count,
	})
}
