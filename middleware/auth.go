// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"trading-cards-admin/logger"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures an admin is logged in.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "user" session variable is set.
// - If no user is found, redirects to "/login" and aborts execution.
// - Otherwise, the operator is stored on the context and the request proceeds.
// Usage:
//
//	router.Use(AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user, _ := session.Get("user").(string)

	// block request if user session is missing
	if user == "" {
		logger.Warn.Printf("AuthRequired: no user in session for %s %s", c.Request.Method, c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort() // 🔴 prevents further execution
		return
	}

	c.Set(operatorKey, user)
	logger.Debug.Println("[AuthRequired] User authenticated - proceeding with request")
	c.Next()
}
