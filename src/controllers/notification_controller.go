package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetUserNotifications returns the authenticated user's notifications
// newest-first. A null user_id means the notification is a broadcast
// addressed to everyone, so those rows are always included.
func GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var notifications []models.Notification
	err := lib.DB.Where("user_id = ? OR user_id IS NULL", user.ID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		lib.Log.Errorw("Failed to list notifications", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// GetNotificationByID returns a single notification visible to the caller
func GetNotificationByID(c *fiber.Ctx) error {
	notificationIDStr := c.Params("id")
	notificationID, err := strconv.ParseUint(notificationIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var notification models.Notification
	err = lib.DB.Where("id = ? AND (user_id = ? OR user_id IS NULL)", uint(notificationID), user.ID).
		First(&notification).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		lib.Log.Errorw("Failed to load notification", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading notification",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notification)
}
