package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// NotificationRoutes sets up the user-facing notification, news, and unified updates feed routes
func NotificationRoutes(app *fiber.App) {
	notification := app.Group("/api/v1/notifications", middleware.ProtectRoute)

	notification.Get("/", controllers.GetUserNotifications)
	notification.Get("/:id", controllers.GetNotificationByID)

	news := app.Group("/api/v1/news")

	news.Get("/", controllers.GetNews)
	news.Get("/:id", controllers.GetNewsByID)

	app.Get("/api/v1/updates", controllers.GetUpdatesFeed)
}
