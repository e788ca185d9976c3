package routes

import (
	"Fabler/controllers"
	"Fabler/middleware"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, st *store.Store) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/allusers", controllers.GetAllUsers(st))

	api.POST("/login", controllers.Login(st))

	api.POST("/signup", controllers.SignUp(st))

	api.POST("/guest", controllers.GuestSignUp(st))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.GetPrivateInfo(st))
	}
}
