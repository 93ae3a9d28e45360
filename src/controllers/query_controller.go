package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// CreateQuery submits a help request for the authenticated user
func CreateQuery(c *fiber.Ctx) error {
	var req struct {
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Subject and message are required",
		})
	}

	user := c.Locals("user").(models.User)

	newQuery := models.Query{
		UserID:  user.ID,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.QueryStatusOpen,
	}

	if err := lib.DB.Create(&newQuery).Error; err != nil {
		lib.Log.Errorw("Failed to create query", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to submit help request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(newQuery)
}

// GetMyQueries returns the authenticated user's help requests newest-first
func GetMyQueries(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var queries []models.Query
	err := lib.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		lib.Log.Errorw("Failed to list queries", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching help requests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(queries)
}
