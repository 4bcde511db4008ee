package routes

import (
	"quizhub/controllers"
	"quizhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up admin routes
func SetupAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/users", controllers.ListUsers)
		admin.DELETE("/quizzes/:id", controllers.RemoveQuiz)
	}
}
