// File: controllers/flash.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"trading-cards-admin/logger"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// addFlash queues a status message for the next dashboard render.
func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		logger.Error.Printf("addFlash: failed to save session: %v", err)
	}
}

// takeFlashes pops every queued message of kind.
func takeFlashes(c *gin.Context, kind string) []string {
	session := sessions.Default(c)
	raw := session.Flashes(kind)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		out = append(out, fmt.Sprint(f))
	}
	return out
}

// backToTab flashes message and redirects to a dashboard tab.
func backToTab(c *gin.Context, tab, kind, message string) {
	addFlash(c, kind, message)
	c.Redirect(http.StatusFound, "/dashboard?tab="+tab)
}
