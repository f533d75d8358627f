package api

import (
	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, blacklist middleware.TokenBlacklist) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": "Snapfeed is alive",
			"data":    nil,
		})
	})

	// 无需登录即可访问的接口
	r.GET("/posts", group.PostHandler.LegacyPosts)
	r.GET("/feed", group.PostHandler.Feed)

	authAPI := r.Group("/auth")
	{
		authAPI.POST("/register", group.UserHandler.Register)
		authAPI.POST("/login", group.UserHandler.Login)
	}

	// 需要登录的接口
	authGroup := r.Group("")
	authGroup.Use(middleware.AuthMiddleware(blacklist))
	{
		authGroup.POST("/upload", group.PostHandler.Upload)
		authGroup.DELETE("/posts/:post_id", group.PostHandler.Delete)
		authGroup.POST("/auth/logout", group.UserHandler.Logout)
		authGroup.GET("/users/me", group.UserHandler.Me)
	}

	return r
}
