package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetExploreUsers lists all profiles with their idea and follower counts for
// the explore page
func GetExploreUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := lib.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		lib.Log.Errorw("Failed to list users", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching users",
		})
	}

	var ideas []models.Idea
	if err := lib.DB.Select("id", "user_id", "category").Find(&ideas).Error; err != nil {
		lib.Log.Errorw("Failed to list ideas", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching users",
		})
	}

	var connections []models.Connection
	if err := lib.DB.Select("follower_id", "following_id").Find(&connections).Error; err != nil {
		lib.Log.Errorw("Failed to list connections", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching users",
		})
	}

	ideaCounts := make(map[uint]int)
	for _, idea := range ideas {
		ideaCounts[idea.UserID]++
	}
	followerCounts := make(map[uint]int)
	for _, conn := range connections {
		followerCounts[conn.FollowingID]++
	}

	type ExploreUserResponse struct {
		models.UserDto
		IdeaCount     int `json:"idea_count"`
		FollowerCount int `json:"follower_count"`
	}

	response := make([]ExploreUserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, ExploreUserResponse{
			UserDto:       u.ToDto(),
			IdeaCount:     ideaCounts[u.ID],
			FollowerCount: followerCounts[u.ID],
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPublicProfile returns a user's profile with their ideas, achievements,
// and follower count
func GetPublicProfile(c *fiber.Ctx) error {
	userIDStr := c.Params("id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	profile, err := lib.FindUserByID(uint(userID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		lib.Log.Errorw("Failed to load profile", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading profile",
		})
	}

	var ideas []models.Idea
	if err := lib.DB.Where("user_id = ?", profile.ID).
		Order("created_at DESC").Find(&ideas).Error; err != nil {
		lib.Log.Errorw("Failed to list user ideas", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading profile",
		})
	}

	var achievements []models.Achievement
	if err := lib.DB.Where("user_id = ?", profile.ID).
		Order("awarded_at DESC").Find(&achievements).Error; err != nil {
		lib.Log.Errorw("Failed to list achievements", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading profile",
		})
	}

	var followers int64
	if err := lib.DB.Model(&models.Connection{}).
		Where("following_id = ?", profile.ID).Count(&followers).Error; err != nil {
		lib.Log.Errorw("Failed to count followers", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading profile",
		})
	}

	ideaDtos := make([]models.IdeaDto, 0, len(ideas))
	for _, idea := range ideas {
		ideaDtos = append(ideaDtos, idea.ToDto(profile.FullName))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile":      profile.ToDto(),
		"ideas":        ideaDtos,
		"achievements": achievements,
		"followers":    followers,
	})
}

// UpdateProfile updates the authenticated user's own profile fields
func UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FullName         string   `json:"full_name" validate:"required"`
		Skills           []string `json:"skills"`
		HallTicketNumber string   `json:"hall_ticket_number"`
		Mobile           string   `json:"mobile"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Full name is required",
		})
	}

	authed := c.Locals("user").(models.User)

	var user models.User
	if err := lib.DB.First(&user, authed.ID).Error; err != nil {
		lib.Log.Errorw("Failed to load profile", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error loading profile",
		})
	}

	user.FullName = req.FullName
	user.Skills = req.Skills
	user.HallTicketNumber = req.HallTicketNumber
	user.Mobile = req.Mobile

	if err := lib.DB.Save(&user).Error; err != nil {
		lib.Log.Errorw("Failed to update profile", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user.ToDto())
}
