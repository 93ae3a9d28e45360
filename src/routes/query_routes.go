package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// QueryRoutes sets up help-request routes and the user's achievements listing
func QueryRoutes(app *fiber.App) {
	query := app.Group("/api/v1/queries", middleware.ProtectRoute)

	query.Post("/", controllers.CreateQuery)
	query.Get("/", controllers.GetMyQueries)

	app.Get("/api/v1/achievements", middleware.ProtectRoute, controllers.GetMyAchievements)
}
