// File: controllers/user_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"trading-cards-admin/logger"
	"trading-cards-admin/middleware"
	"trading-cards-admin/models"
	"trading-cards-admin/services"
)

// UserController provisions attendee accounts.
type UserController struct {
	Service services.UserServiceInterface
}

// NewUserController initializes a new instance of UserController
func NewUserController(svc services.UserServiceInterface) *UserController {
	return &UserController{Service: svc}
}

// CreateUser handles the user form. Auth errors are shown verbatim.
func (uc *UserController) CreateUser(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBind(&profile); err != nil {
		logger.Warn.Printf("CreateUser: invalid form: %v", err)
		backToTab(c, TabUsers, flashError, "Username, email, password and pre-assigned card ID are all required.")
		return
	}

	uid, err := uc.Service.Create(c.Request.Context(), middleware.CurrentOperator(c), profile)
	switch {
	case services.IsOrphaned(err):
		backToTab(c, TabUsers, flashError, fmt.Sprintf(
			"Login %s was created (uid %s) but its profile could not be saved: %v", profile.Email, uid, err))
	case err != nil:
		backToTab(c, TabUsers, flashError, "Error creating user: "+err.Error())
	default:
		backToTab(c, TabUsers, flashSuccess, fmt.Sprintf("User %s created (uid %s).", profile.Username, uid))
	}
}

// ListUsers returns every profile as JSON.
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []models.UserAccount{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
