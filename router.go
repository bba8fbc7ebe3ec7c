// router.go
package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"trading-cards-admin/config"
	"trading-cards-admin/controllers"
	"trading-cards-admin/logger"
	"trading-cards-admin/middleware"
)

const feedPath = "/p2p/feed"

// setupRouter registers every route on a new gin engine.
func setupRouter(cfg *config.Config, d *deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize session store
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("tcadmin", store))

	templatesDir := filepath.Join(cfg.TemplatesDir, "*.html")
	logger.Info.Println("Templates Path:", templatesDir)
	router.LoadHTMLGlob(templatesDir)

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		router.Static("/static", cfg.StaticDir)
	}

	authCtrl := controllers.NewAuthController(cfg.AdminCredsPath)
	pages := controllers.NewPageController(d.Users, d.Quests, d.Reviews, d.Reset)
	userCtrl := controllers.NewUserController(d.Users)
	questCtrl := controllers.NewQuestController(d.Quests)
	reviewCtrl := controllers.NewReviewController(d.Reviews)
	resetCtrl := controllers.NewResetController(d.Reset)

	// Public routes
	router.GET("/health", controllers.Health)
	router.GET("/login", authCtrl.ShowLogin)
	router.POST("/login", authCtrl.Login)
	router.GET("/logout", controllers.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired, middleware.AdminRequired())
	{
		protected.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
		protected.GET("/dashboard", pages.Dashboard)
		protected.GET("/users", userCtrl.ListUsers)
		protected.POST("/users", userCtrl.CreateUser)
		protected.POST("/quests", questCtrl.CreateQuest)
		protected.POST("/quests/:id/delete", questCtrl.DeleteQuest)
		protected.GET("/quests/:id/qrcode", questCtrl.QRCode)
		protected.GET("/p2p/pending", reviewCtrl.Pending)
		protected.POST("/p2p/:id/review", reviewCtrl.Review)
		protected.GET(feedPath, d.Feed.Handler())
		protected.POST("/reset", resetCtrl.Reset)
	}

	return router
}

// withTracing wraps the router in an X-Ray segment per request. The live feed
// is a long-lived hijacked connection and is served untraced.
func withTracing(cfg *config.Config, router http.Handler) http.Handler {
	if !cfg.XRayEnabled {
		return router
	}
	traced := xray.Handler(xray.NewFixedSegmentNamer("trading-cards-admin"), router)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == feedPath {
			router.ServeHTTP(w, r)
			return
		}
		traced.ServeHTTP(w, r)
	})
}
