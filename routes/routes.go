package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/abhinavsrinivasan/diabetes-me/controllers"
	"github.com/abhinavsrinivasan/diabetes-me/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(requestid.New())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)
	r.GET("/recipes", controllers.GetRecipes)

	// Protected routes
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", controllers.GetProfile)
		auth.PUT("/profile", controllers.UpdateProfile)
		auth.POST("/profile/picture", controllers.UploadProfilePicture)
		auth.POST("/goals", controllers.UpdateGoals)
		auth.POST("/progress", controllers.LogProgress)
		auth.POST("/progress/reset", controllers.ResetProgress)
	}

	return r
}
