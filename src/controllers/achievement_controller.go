package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetMyAchievements returns the authenticated user's badges newest-first
func GetMyAchievements(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var achievements []models.Achievement
	err := lib.DB.Where("user_id = ?", user.ID).
		Order("awarded_at DESC").
		Find(&achievements).Error
	if err != nil {
		lib.Log.Errorw("Failed to list achievements", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching achievements",
		})
	}

	return c.Status(fiber.StatusOK).JSON(achievements)
}
