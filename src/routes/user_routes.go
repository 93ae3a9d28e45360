package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// UserRoutes sets up user routes for explore, public profiles, and profile update
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute)

	user.Get("/", controllers.GetExploreUsers)
	user.Put("/profile", controllers.UpdateProfile)
	user.Get("/:id", controllers.GetPublicProfile)
}
