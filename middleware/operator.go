// File: middleware/operator.go
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"trading-cards-admin/models"
)

const operatorKey = "operator"

// CurrentOperator returns the signed-in admin for this request. Handlers pass
// it to services explicitly instead of reaching into the session themselves.
func CurrentOperator(c *gin.Context) models.Operator {
	if name := c.GetString(operatorKey); name != "" {
		return models.Operator{Username: name}
	}
	name, _ := sessions.Default(c).Get("user").(string)
	return models.Operator{Username: name}
}
