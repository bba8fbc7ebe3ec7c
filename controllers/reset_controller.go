// File: controllers/reset_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"trading-cards-admin/middleware"
	"trading-cards-admin/services"
)

// ResetController exposes the gated full reset.
type ResetController struct {
	Service services.ResetServiceInterface
}

// NewResetController initializes a new instance of ResetController
func NewResetController(svc services.ResetServiceInterface) *ResetController {
	return &ResetController{Service: svc}
}

// Reset re-checks the typed phrase and triggers the orchestrator once.
// The phrase is read verbatim; it is never trimmed or case-folded.
func (rc *ResetController) Reset(c *gin.Context) {
	typed := c.PostForm("confirmation")

	err := rc.Service.Trigger(c.Request.Context(), middleware.CurrentOperator(c), typed)
	switch {
	case errors.Is(err, services.ErrNotConfirmed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type " + rc.Service.Gate().Phrase + " exactly to confirm the reset."})
	case err != nil:
		c.JSON(statusFor(err), gin.H{"error": "Reset failed: " + err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "All data for event " + rc.Service.EventID() + " has been archived and reset."})
	}
}
