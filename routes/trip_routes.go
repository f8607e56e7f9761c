package routes

import (
	"tripmate/controllers"
	"tripmate/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTripRoutes(r *gin.Engine) {
	tripController := controllers.NewTripController()
	grp := r.Group("/api/trips")
	{
		grp.GET("", tripController.List)
		// статический маршрут регистрируем раньше параметрического
		grp.GET("/swipeable", middleware.JWTAuthMiddleware(), tripController.Swipeable)
		grp.GET("/:id", tripController.Get)
		grp.POST("", middleware.JWTAuthMiddleware(), tripController.Create)
		grp.POST("/:id/swipe", middleware.JWTAuthMiddleware(), tripController.Swipe)
	}
}
