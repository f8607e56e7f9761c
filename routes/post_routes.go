package routes

import (
	"tripmate/controllers"
	"tripmate/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPostRoutes(r *gin.Engine) {
	postController := controllers.NewPostController()
	destinationController := controllers.NewDestinationController()

	grp := r.Group("/api/posts")
	{
		grp.GET("", postController.List)
		grp.GET("/:id", postController.Get)
		grp.POST("", middleware.JWTAuthMiddleware(), postController.Create)
		grp.POST("/:id/comments", middleware.JWTAuthMiddleware(), postController.CreateComment)
		grp.POST("/:id/like", middleware.JWTAuthMiddleware(), postController.ToggleLike)
	}

	r.GET("/api/destinations/popular", destinationController.Popular)
}
