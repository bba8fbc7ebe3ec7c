// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"trading-cards-admin/logger"
	"trading-cards-admin/middleware"
	"trading-cards-admin/services"
)

// Dashboard tabs.
const (
	TabUsers  = "users"
	TabQuests = "quests"
	TabP2P    = "p2p"
	TabReset  = "reset"
)

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// PageController renders the tabbed dashboard.
type PageController struct {
	Users   services.UserServiceInterface
	Quests  services.QuestServiceInterface
	Reviews services.ReviewServiceInterface
	Reset   services.ResetServiceInterface
}

// NewPageController wires the services each tab reads from.
func NewPageController(users services.UserServiceInterface, quests services.QuestServiceInterface,
	reviews services.ReviewServiceInterface, reset services.ResetServiceInterface) *PageController {
	return &PageController{Users: users, Quests: quests, Reviews: reviews, Reset: reset}
}

// Dashboard shows one tab; only that tab's data is fetched.
func (pc *PageController) Dashboard(c *gin.Context) {
	tab := c.DefaultQuery("tab", TabUsers)
	switch tab {
	case TabUsers, TabQuests, TabP2P, TabReset:
	default:
		tab = TabUsers
	}

	data := gin.H{
		"Tab":      tab,
		"Operator": middleware.CurrentOperator(c).Username,
		"Success":  takeFlashes(c, flashSuccess),
		"Errors":   takeFlashes(c, flashError),
		"Phrase":   pc.Reset.Gate().Phrase,
		"EventID":  pc.Reset.EventID(),
	}
	if err := sessions.Default(c).Save(); err != nil {
		logger.Error.Printf("Dashboard: failed to save session: %v", err)
	}

	ctx := c.Request.Context()
	var loadErr error
	switch tab {
	case TabUsers:
		data["Users"], loadErr = pc.Users.List(ctx)
	case TabQuests:
		data["Quests"], loadErr = pc.Quests.List(ctx)
	case TabP2P:
		data["Pending"], loadErr = pc.Reviews.Pending(ctx)
	}
	if loadErr != nil {
		logger.Error.Printf("Dashboard: failed to load %s tab: %v", tab, loadErr)
		data["Errors"] = append(data["Errors"].([]string), "Could not load "+tab+": "+loadErr.Error())
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}
