// File: controllers/review_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trading-cards-admin/middleware"
	"trading-cards-admin/models"
	"trading-cards-admin/services"
)

// ReviewController serves the P2P moderation endpoints.
type ReviewController struct {
	Service services.ReviewServiceInterface
}

// NewReviewController initializes a new instance of ReviewController
func NewReviewController(svc services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{Service: svc}
}

type reviewRequest struct {
	Decision models.SubmissionStatus `json:"decision" form:"decision" binding:"required"`
}

// Pending returns the current pending queue as JSON.
func (rc *ReviewController) Pending(c *gin.Context) {
	views, err := rc.Service.Pending(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": views, "count": len(views)})
}

// Review approves or rejects one submission.
func (rc *ReviewController) Review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision is required"})
		return
	}

	id := c.Param("id")
	if err := rc.Service.Review(c.Request.Context(), middleware.CurrentOperator(c), id, req.Decision); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Decision})
}
