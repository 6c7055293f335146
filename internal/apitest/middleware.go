package apitest

import (
	"net/http"
	"time"

	"auction-client/internal/models"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "sessionid"
	csrfCookieName    = "csrftoken"
	csrfHeaderName    = "X-CSRFToken"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("API request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.Request.Header.Get("X-Request-ID"),
	})
}

// CSRFMiddleware rejects mutating requests whose X-CSRFToken header does
// not match the csrftoken cookie
func CSRFMiddleware(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		cookie, err := c.Cookie(csrfCookieName)
		if err != nil || cookie == "" || c.GetHeader(csrfHeaderName) != cookie {
			utils.JSONFailure(c, http.StatusForbidden, "CSRF token missing or invalid")
			c.Abort()
			return
		}
	}
	c.Next()
}

// SessionMiddleware resolves the session cookie to a user and aborts
// unauthenticated requests
func SessionMiddleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			utils.JSONFailure(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		user, ok := store.UserBySession(token)
		if !ok {
			utils.JSONFailure(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// sessionUser returns the user the SessionMiddleware attached to the
// request context
func sessionUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}
