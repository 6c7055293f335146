package apitest

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter configures a gin engine serving the full auction API
// surface against the given in-memory store. The integration tests run
// the real client against it; it also works as a local dev server.
func SetupRouter(store *Store) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CSRFMiddleware)          // mutating requests need the token header

	handler := NewHandler(store)

	api := router.Group("/api")
	{
		api.GET("/csrf/", handler.IssueCSRF)

		auth := api.Group("/auth")
		{
			auth.POST("/login/", handler.Login)
			auth.POST("/signup/", handler.Signup)
		}

		session := api.Group("", SessionMiddleware(store))
		{
			session.GET("/auth/me/", handler.CurrentUser)
			session.POST("/auth/logout/", handler.Logout)
			session.PUT("/profile/", handler.UpdateProfile)
			session.PUT("/auth/profile/update/", handler.UpdateProfile) // legacy path

			session.GET("/items/", handler.ListItems)
			session.POST("/items/", handler.CreateItem)
			session.GET("/items/:item_id/", handler.ItemDetail)
			session.PUT("/items/:item_id/edit/", handler.UpdateItem)
			session.DELETE("/items/:item_id/delete/", handler.DeleteItem)
			session.POST("/items/:item_id/bid/", handler.PlaceBid)
			session.POST("/items/:item_id/questions/", handler.AskQuestion)
			session.POST("/questions/:question_id/answer/", handler.AnswerQuestion)
		}
	}

	return router
}
