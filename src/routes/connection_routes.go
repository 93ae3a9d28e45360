package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// ConnectionRoutes sets up follow/unfollow routes and connection status lookups
func ConnectionRoutes(app *fiber.App) {
	connection := app.Group("/api/v1/connections", middleware.ProtectRoute)

	connection.Get("/followers", controllers.GetFollowers)
	connection.Get("/status/:userId", controllers.GetConnectionStatus)
	connection.Post("/:userId", controllers.FollowUser)
	connection.Delete("/:userId", controllers.UnfollowUser)
}
