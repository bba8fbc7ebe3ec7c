// Package controllers handles the admin dashboard's HTTP endpoints.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"trading-cards-admin/config"
	"trading-cards-admin/logger"
	"trading-cards-admin/models"
)

// ------------------ authentication utilities ------------------

// checkPasswordHash verifies if the provided plain-text password matches the stored hashed password.
func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthController signs operators in and out of the dashboard.
type AuthController struct {
	loadCreds func() (*models.AdminCreds, error)
}

// NewAuthController reads credentials from credsPath on every login attempt,
// so edits to the file apply without a restart.
func NewAuthController(credsPath string) *AuthController {
	return &AuthController{
		loadCreds: func() (*models.AdminCreds, error) { return config.LoadAdminCreds(credsPath) },
	}
}

// ShowLogin renders the login form, or skips it for a signed-in admin.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if user, _ := session.Get("user").(string); user != "" {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// ------------------ login handling ------------------

// Login authenticates the operator against the admin credentials file.
// On success it stores the user and admin flag in the session and redirects
// to the dashboard; otherwise the login form is re-rendered with an error.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// Validate that both fields are provided.
	if username == "" || password == "" {
		logger.Warn.Println("Login: Missing username or password")
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Please fill in all fields."})
		return
	}

	creds, err := ac.loadCreds()
	if err != nil {
		logger.Error.Println("Login: Failed to load admin credentials:", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Internal error, please try again later."})
		return
	}

	var admin *models.Admin
	for i := range creds.Admins {
		if creds.Admins[i].Username == username && checkPasswordHash(password, creds.Admins[i].Password) {
			admin = &creds.Admins[i]
			break
		}
	}
	if admin == nil || !admin.IsAdmin {
		logger.Warn.Printf("Login: Invalid login attempt for user %s", username)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid username or password."})
		return
	}

	session := sessions.Default(c)
	session.Set("user", admin.Username)
	session.Set("isAdmin", admin.IsAdmin)
	if err := session.Save(); err != nil {
		logger.Error.Println("Login: Failed to save session:", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Internal error, please try again."})
		return
	}

	logger.Info.Printf("Login: User %s authenticated", admin.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and returns to the login page.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	if user := session.Get("user"); user != nil {
		logger.Info.Printf("Logout: Logging out user %v", user)
	}
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logger.Error.Println("Logout: Failed to save session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
