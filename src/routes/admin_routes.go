package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// AdminRoutes sets up the moderation dashboard routes: user management, idea
// moderation, notification dispatch, news publishing, achievements, and
// help-request responses
func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.ProtectRoute, middleware.AdminOnly)

	admin.Get("/stats", controllers.GetAdminStats)

	admin.Get("/users", controllers.AdminListUsers)
	admin.Put("/users/:id/block", controllers.BlockUser)
	admin.Delete("/users/:id", controllers.DeleteUser)

	admin.Put("/ideas/:id/status", controllers.SetIdeaStatus)
	admin.Put("/ideas/:id/feature", controllers.SetIdeaFeatured)
	admin.Delete("/ideas/:id", controllers.AdminDeleteIdea)

	admin.Get("/notifications", controllers.AdminListNotifications)
	admin.Post("/notifications", controllers.SendNotification)
	admin.Delete("/notifications/:id", controllers.AdminDeleteNotification)

	admin.Post("/news", controllers.CreateNews)
	admin.Put("/news/:id", controllers.UpdateNews)
	admin.Delete("/news/:id", controllers.AdminDeleteNews)

	admin.Post("/achievements", controllers.AwardAchievement)

	admin.Get("/queries", controllers.AdminListQueries)
	admin.Put("/queries/:id", controllers.RespondQuery)
}
