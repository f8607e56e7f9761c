package routes

import (
	"tripmate/controllers"
	"tripmate/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(r *gin.Engine) {
	authController := controllers.NewAuthController()
	userTripController := controllers.NewUserTripController()

	r.GET("/api/auth/user", middleware.JWTAuthMiddleware(), authController.GetUser)

	grp := r.Group("/api/user", middleware.JWTAuthMiddleware())
	{
		grp.GET("/trips", userTripController.List)
		grp.DELETE("/trips/:tripId", userTripController.Delete)
	}
}
