package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ece-vision/Backend-Vision-Hub/src/controllers"
	"github.com/ece-vision/Backend-Vision-Hub/src/middleware"
)

// AuthRoutes sets up authentication routes for signup, login, logout, password reset, and the current user
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", controllers.Logout)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password", controllers.ResetPassword)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetCurrentUser)
}
