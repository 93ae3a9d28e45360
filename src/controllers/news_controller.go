package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetNews returns all news articles newest-first
func GetNews(c *fiber.Ctx) error {
	var news []models.News
	if err := lib.DB.Order("created_at DESC, id DESC").Find(&news).Error; err != nil {
		lib.Log.Errorw("Failed to list news", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching news",
		})
	}

	return c.Status(fiber.StatusOK).JSON(news)
}

// GetNewsByID returns a single news article
func GetNewsByID(c *fiber.Ctx) error {
	newsIDStr := c.Params("id")
	newsID, err := strconv.ParseUint(newsIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid news ID format",
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
			"message": "Error loading news article",
		})
	}

	return c.Status(fiber.StatusOK).JSON(article)
}
