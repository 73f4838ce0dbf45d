package routes

import (
	"net/http"

	"kboard/controllers"
	"kboard/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userController *controllers.UserController, authController *controllers.AuthController, postController *controllers.PostController, commentController *controllers.CommentController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.AuthRequired(), authController.Me)
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("", userController.GetUsers)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postController.ListPosts)
			posts.GET("/search", postController.SearchPosts)
			posts.GET("/:id", postController.GetPost)
			posts.GET("/:id/comments", commentController.GetPostComments)

			posts.POST("", middleware.AuthRequired(), postController.CreatePost)
			posts.PUT("/:id", middleware.AuthRequired(), postController.UpdatePost)
			posts.DELETE("/:id", middleware.AuthRequired(), postController.DeletePost)
			posts.POST("/:id/comments", middleware.AuthRequired(), commentController.CreateComment)
		}

		comments := api.Group("/comments")
		comments.Use(middleware.AuthRequired())
		{
			comments.PUT("/:id", commentController.UpdateComment)
			comments.DELETE("/:id", commentController.DeleteComment)
		}
	}
}
