package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/ece-vision/Backend-Vision-Hub/src/lib"
	"github.com/ece-vision/Backend-Vision-Hub/src/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	lib.InitLogger()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	lib.ConnectDB()

	lib.AutoMigrate()

	// Register routes
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.IdeaRoutes(app)
	routes.ConnectionRoutes(app)
	routes.NotificationRoutes(app)
	routes.QueryRoutes(app)
	routes.AdminRoutes(app)

	var port string = os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	lib.Log.Infow("Server is running", "port", port)
	if err := app.Listen(":" + port); err != nil {
		lib.Log.Fatalw("Server stopped", "err", err)
	}
}
