package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/models"
)

// GetIdeas returns all ideas newest-first, optionally filtered by a search
// term (matched against title, description, or any skill) and a category
// (matched against the category or skills membership)
func GetIdeas(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category")

	query := lib.DB.Model(&models.Idea{})

	if search != "" {
		// SQLite LIKE is case-insensitive for ASCII; skills are stored as a
		// JSON array so a substring match covers membership.
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR skills LIKE ?",
			pattern, pattern, pattern)
	}

	if category != "" && category != "all" {
		query = query.Where("category = ? OR skills LIKE ?", category, "%\""+category+"\"%")
	}

	var ideas []models.Idea
	if err := query.Order("created_at DESC, id DESC").Find(&ideas).Error; err != nil {
		lib.Log.Errorw("Failed to list ideas", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching ideas",
		})
	}

	// Resolve author display names in one profile lookup, not a join.
	userIDs := make([]uint, 0, len(ideas))
	for _, idea := range ideas {
		userIDs = append(userIDs, idea.UserID)
	}
	names, err := lib.ProfileNames(userIDs)
	if err != nil {
		lib.Log.Errorw("Failed to resolve authors", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching ideas",
		})
	}

	ideaDtos := make([]models.IdeaDto, 0, len(ideas))
	for _, idea := range ideas {
		ideaDtos = append(ideaDtos, idea.ToDto(names[idea.UserID]))
	}

	return c.Status(fiber.StatusOK).JSON(ideaDtos)
}

// GetFeaturedIdeas returns up to six approved, featured ideas newest-first
func GetFeaturedIdeas(c *fiber.Ctx) error {
	var ideas []models.Idea
	err := lib.DB.Where("status = ? AND is_featured = ?", models.IdeaStatusApproved, true).
		Order("created_at DESC, id DESC").
		Limit(6).
		Find(&ideas).Error
	if err != nil {
		lib.Log.Errorw("Failed to list featured ideas", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching featured ideas",
		})
	}

	userIDs := make([]uint, 0, len(ideas))
	for _, idea := range ideas {
		userIDs = append(userIDs, idea.UserID)
	}
	names, err := lib.ProfileNames(userIDs)
	if err != nil {
		lib.Log.Errorw("Failed to resolve authors", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching featured ideas",
		})
	}

	ideaDtos := make([]models.IdeaDto, 0, len(ideas))
	for _, idea := range ideas {
		ideaDtos = append(ideaDtos, idea.ToDto(names[idea.UserID]))
	}

	return c.Status(fiber.StatusOK).JSON(ideaDtos)
}

// GetIdeaByID returns a single idea with its author's display name and
// increments the view counter
func GetIdeaByID(c *fiber.Ctx) error {
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
			"message": "Error loading idea",
		})
	}

	// Approximate counter, lost updates between concurrent readers are fine.
	if err := lib.DB.Model(&idea).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		lib.Log.Errorw("Failed to count view", "idea_id", idea.ID, "err", err)
	}
	idea.Views++

	var author models.User
	authorName := "Unknown"
	if err := lib.DB.Select("id", "full_name").First(&author, idea.UserID).Error; err == nil {
		authorName = author.FullName
	}

	return c.Status(fiber.StatusOK).JSON(idea.ToDto(authorName))
}

// CreateIdea submits a new idea for the authenticated user with pending status
func CreateIdea(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Category    string   `json:"category"`
		Skills      []string `json:"skills"`
		Links       []string `json:"links"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and description are required",
		})
	}

	user := c.Locals("user").(models.User)

	newIdea := models.Idea{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Skills:      req.Skills,
		Links:       req.Links,
		Status:      models.IdeaStatusPending,
		Upvotes:     0,
		Views:       0,
		UserID:      user.ID,
	}

	if err := lib.DB.Create(&newIdea).Error; err != nil {
		lib.Log.Errorw("Failed to create idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to submit idea",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(newIdea.ToDto(user.FullName))
}

// UpdateIdea lets the idea's owner overwrite title, description, category,
// skills, and links. Edits do not send the idea back to moderation.
func UpdateIdea(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
		})
	}

	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Category    string   `json:"category"`
		Skills      []string `json:"skills"`
		Links       []string `json:"links"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := lib.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and description are required",
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

	if idea.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You are not authorized to edit this idea",
		})
	}

	idea.Title = req.Title
	idea.Description = req.Description
	idea.Category = req.Category
	idea.Skills = req.Skills
	idea.Links = req.Links

	if err := lib.DB.Save(&idea).Error; err != nil {
		lib.Log.Errorw("Failed to update idea", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update idea",
		})
	}

	return c.Status(fiber.StatusOK).JSON(idea.ToDto(user.FullName))
}

// UpvoteIdea records an upvote for the authenticated user. Repeat calls are
// no-ops: idea upvotes only ever go up, unlike suggestion upvotes which
// toggle. The upvote row and the counter are written in one transaction so
// the counter always equals the row count.
func UpvoteIdea(c *fiber.Ctx) error {
	ideaIDStr := c.Params("id")
	ideaID, err := strconv.ParseUint(ideaIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid idea ID format",
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

	var existing models.Upvote
	err = lib.DB.Where("idea_id = ? AND user_id = ?", idea.ID, user.ID).First(&existing).Error
	if err == nil {
		// Already upvoted
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Already upvoted",
			"upvotes": idea.Upvotes,
		})
	}
	if err != gorm.ErrRecordNotFound {
		lib.Log.Errorw("Failed to check upvote", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error checking upvote status",
		})
	}

	err = lib.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Upvote{IdeaID: idea.ID, UserID: user.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&idea).Update("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		lib.Log.Errorw("Failed to upvote idea", "idea_id", idea.ID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upvote idea",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Idea upvoted",
		"upvotes": idea.Upvotes + 1,
	})
}
