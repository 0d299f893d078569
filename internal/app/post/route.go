package post

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards/:slug")
	{
		boards.GET("/posts", handler.ListPosts)
		boards.POST("/posts", handler.CreatePost)
	}

	threads := rg.Group("/threads")
	{
		threads.GET("", handler.ListThreads)
		threads.POST("", handler.CreateThread)
	}
}
