package api

import (
	"bemusicshare/internal/api/middleware"
	"bemusicshare/internal/pkg/consts"
	"bemusicshare/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedIn := authGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			publicUsers := userGroup.Group("")
			publicUsers.Use(middleware.AuthOptionalMiddleware())
			{
				publicUsers.GET("/:user_id", group.UserHandler.GetUserById)
				publicUsers.GET("/:user_id/followers", group.UserFollowHandler.GetFollowers)
				publicUsers.GET("/:user_id/following", group.UserFollowHandler.GetFollowing)
			}

			loggedIn := userGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.GET("/me", group.UserHandler.GetUserInfo)
				loggedIn.PUT("/me", group.UserHandler.UpdateUserInfo)
				loggedIn.POST("/:user_id/follow", group.UserFollowHandler.Follow)
				loggedIn.DELETE("/:user_id/follow", group.UserFollowHandler.Unfollow)
			}
		}

		postGroup := apiGroup.Group("/recommendations")
		{
			publicPosts := postGroup.Group("")
			publicPosts.Use(middleware.AuthOptionalMiddleware())
			{
				publicPosts.GET("", group.PostHandler.ListFeed)
				publicPosts.GET("/search", group.PostHandler.SearchPosts)
				publicPosts.GET("/:post_id", group.PostHandler.GetPost)
				publicPosts.GET("/:post_id/comments", group.CommentHandler.ListComments)
			}

			loggedIn := postGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.POST("", group.PostHandler.CreatePost)
				loggedIn.DELETE("/:post_id", group.PostHandler.DeletePost)
				loggedIn.POST("/:post_id/vote", group.PostHandler.CastVote)
				loggedIn.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				loggedIn.DELETE("/:post_id/comments/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		songGroup := apiGroup.Group("/songs")
		{
			songGroup.GET("/genres", group.SongHandler.ListGenres)
			songGroup.GET("/:song_id", group.SongHandler.GetSong)

			loggedIn := songGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.POST("", group.SongHandler.CreateSong)
			}

			adminGroup := loggedIn.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("/:song_id/review", group.SongHandler.ReviewSong)
			}
		}

		libraryGroup := apiGroup.Group("/library")
		libraryGroup.Use(middleware.AuthMiddleware())
		{
			libraryGroup.GET("/songs", group.SavedSongHandler.ListSavedSongs)
			libraryGroup.POST("/songs/:song_id", group.SavedSongHandler.SaveSong)
			libraryGroup.DELETE("/songs/:song_id", group.SavedSongHandler.UnsaveSong)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.ListNotifications)
			notificationGroup.PUT("/:notification_id/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.PUT("/read-all", group.NotificationHandler.MarkAllAsRead)
		}
	}

	return r
}
