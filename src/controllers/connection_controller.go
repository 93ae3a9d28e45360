package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// FollowUser creates a directed follow edge from the authenticated user to
// the target. A second call is a no-op: exactly one edge ever exists.
func FollowUser(c *fiber.Ctx) error {
	targetUserIDStr := c.Params("userId")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if user.ID == uint(targetUserID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "You can't follow yourself",
		})
	}

	var target models.User
	if err := lib.DB.First(&target, uint(targetUserID)).Error; err != nil {
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

	var existing models.Connection
	err = lib.DB.Where("follower_id = ? AND following_id = ?", user.ID, target.ID).
		First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Already following this user",
		})
	}
	if err != gorm.ErrRecordNotFound {
		lib.Log.Errorw("Failed to check connection", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	newConnection := models.Connection{
		FollowerID:  user.ID,
		FollowingID: target.ID,
	}

	if err := lib.DB.Create(&newConnection).Error; err != nil {
		lib.Log.Errorw("Failed to create connection", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to follow user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "You are now following this user",
	})
}

// UnfollowUser removes the follow edge from the authenticated user to the
// target. Reports not-found when no edge exists.
func UnfollowUser(c *fiber.Ctx) error {
	targetUserIDStr := c.Params("userId")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var connection models.Connection
	err = lib.DB.Where("follower_id = ? AND following_id = ?", user.ID, uint(targetUserID)).
		First(&connection).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Connection does not exist",
			})
		}
		lib.Log.Errorw("Failed to find connection", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	// Hard delete so following again later does not hit the unique edge index
	if err := lib.DB.Unscoped().Delete(&connection).Error; err != nil {
		lib.Log.Errorw("Failed to remove connection", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to unfollow user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "You have unfollowed this user",
	})
}

// GetConnectionStatus reports whether the authenticated user follows the
// target, plus the target's follower and following counts recomputed from
// the connection rows
func GetConnectionStatus(c *fiber.Ctx) error {
	targetUserIDStr := c.Params("userId")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	var following bool
	var edge models.Connection
	err = lib.DB.Where("follower_id = ? AND following_id = ?", user.ID, uint(targetUserID)).
		First(&edge).Error
	if err == nil {
		following = true
	} else if err != gorm.ErrRecordNotFound {
		lib.Log.Errorw("Failed to check connection", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	var followers, follows int64
	if err := lib.DB.Model(&models.Connection{}).
		Where("following_id = ?", uint(targetUserID)).Count(&followers).Error; err != nil {
		lib.Log.Errorw("Failed to count followers", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	if err := lib.DB.Model(&models.Connection{}).
		Where("follower_id = ?", uint(targetUserID)).Count(&follows).Error; err != nil {
		lib.Log.Errorw("Failed to count following", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"following": following,
		"followers": followers,
		"follows":   follows,
	})
}

// GetFollowers lists the profiles following the authenticated user
func GetFollowers(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var connections []models.Connection
	err := lib.DB.Preload("Follower").
		Where("following_id = ?", user.ID).
		Order("created_at DESC").
		Find(&connections).Error
	if err != nil {
		lib.Log.Errorw("Failed to list followers", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	followers := make([]models.UserDto, 0, len(connections))
	for _, conn := range connections {
		followers = append(followers, conn.Follower.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(followers)
}
