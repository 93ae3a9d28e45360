package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

const defaultFeedLimit = 50

// GetUpdatesFeed merges news and feed-typed notifications into one
// reverse-chronological list. Both sources are fetched already sorted and
// combined with a two-pointer merge, so ordering stays stable at any limit.
func GetUpdatesFeed(c *fiber.Ctx) error {
	limit := defaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid limit",
			})
		}
		limit = parsed
	}

	var news []models.News
	err := lib.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&news).Error
	if err != nil {
		lib.Log.Errorw("Failed to list news", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching updates",
		})
	}

	var notifications []models.Notification
	err = lib.DB.Where("type IN ?", models.FeedTypes).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		lib.Log.Errorw("Failed to list notifications", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching updates",
		})
	}

	newsItems := make([]models.FeedItem, 0, len(news))
	for _, n := range news {
		newsItems = append(newsItems, models.FeedItem{
			ID:          n.ID,
			Source:      models.FeedSourceNews,
			Title:       n.Title,
			Description: n.Content,
			CreatedAt:   n.CreatedAt,
		})
	}

	notifItems := make([]models.FeedItem, 0, len(notifications))
	for _, n := range notifications {
		notifItems = append(notifItems, models.FeedItem{
			ID:          n.ID,
			Source:      models.FeedSourceNotification,
			Title:       n.Title,
			Description: n.Description,
			Priority:    n.Priority,
			CreatedAt:   n.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(mergeFeedItems(newsItems, notifItems, limit))
}

// mergeFeedItems merges two feeds already sorted by (created_at, id)
// descending and truncates to limit. Equal timestamps fall back to the
// insertion id so output is deterministic.
func mergeFeedItems(a, b []models.FeedItem, limit int) []models.FeedItem {
	merged := make([]models.FeedItem, 0, limit)
	i, j := 0, 0
	for len(merged) < limit && (i < len(a) || j < len(b)) {
		switch {
		case i >= len(a):
			merged = append(merged, b[j])
			j++
		case j >= len(b):
			merged = append(merged, a[i])
			i++
		case feedItemBefore(b[j], a[i]):
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
		}
	}
	return merged
}

// feedItemBefore reports whether x outranks y in the descending feed order.
func feedItemBefore(x, y models.FeedItem) bool {
	if !x.CreatedAt.Equal(y.CreatedAt) {
		return x.CreatedAt.After(y.CreatedAt)
	}
	return x.ID > y.ID
}
