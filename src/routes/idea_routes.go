package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// IdeaRoutes sets up idea routes for listing, details, submission, editing,
// upvoting, and the suggestion thread
func IdeaRoutes(app *fiber.App) {
	idea := app.Group("/api/v1/ideas", middleware.ProtectRoute)

	idea.Get("/", controllers.GetIdeas)
	idea.Get("/featured", controllers.GetFeaturedIdeas)
	idea.Post("/", controllers.CreateIdea)
	idea.Get("/:id", controllers.GetIdeaByID)
	idea.Put("/:id", controllers.UpdateIdea)
	idea.Post("/:id/upvote", controllers.UpvoteIdea)
	idea.Get("/:id/suggestions", controllers.GetSuggestions)
	idea.Post("/:id/suggestions", controllers.CreateSuggestion)

	suggestion := app.Group("/api/v1/suggestions", middleware.ProtectRoute)

	suggestion.Post("/:id/upvote", controllers.UpvoteSuggestion)
	suggestion.Delete("/:id", controllers.DeleteSuggestion)
}
