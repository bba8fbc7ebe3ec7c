// file: middleware/admin_required_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Unique function name to avoid conflicts with other test files
func setupAdminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	// Set up session middleware
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/as-admin", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user", "admin")
		session.Set("isAdmin", true) // ✅ Admin user
		_ = session.Save()
		c.String(http.StatusOK, "ok")
	})
	router.GET("/as-viewer", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user", "viewer")
		session.Set("isAdmin", false) // ❌ Not an admin
		_ = session.Save()
		c.String(http.StatusOK, "ok")
	})

	// Sample route that requires admin
	router.GET("/admin-only", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome, admin!"})
	})

	return router
}

// TestAdminRequired_Success ensures an admin can access the protected route
func TestAdminRequired_Success(t *testing.T) {
	router := setupAdminTestRouter()
	cookie := loginCookie(t, router, "/as-admin")

	req, _ := http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Admin should be allowed")
	assert.Contains(t, w.Body.String(), "Welcome, admin!")
}

// TestAdminRequired_Unauthorized ensures non-admin users are blocked
func TestAdminRequired_Unauthorized(t *testing.T) {
	router := setupAdminTestRouter()
	cookie := loginCookie(t, router, "/as-viewer")

	req, _ := http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "Non-admin should be blocked")
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

// TestAdminRequired_MissingSession ensures missing session results in unauthorized access
func TestAdminRequired_MissingSession(t *testing.T) {
	router := setupAdminTestRouter()

	req, _ := http.NewRequest("GET", "/admin-only", nil)
	w := httptest.NewRecorder()

	// Perform request **without** setting up a session
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "Missing session should block access")
	assert.Contains(t, w.Body.String(), "Unauthorized")
}
