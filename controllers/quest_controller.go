// File: controllers/quest_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"trading-cards-admin/logger"
	"trading-cards-admin/middleware"
	"trading-cards-admin/models"
	"trading-cards-admin/services"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// QuestController manages the quest catalog.
type QuestController struct {
	Service services.QuestServiceInterface
}

// NewQuestController initializes a new instance of QuestController
func NewQuestController(svc services.QuestServiceInterface) *QuestController {
	return &QuestController{Service: svc}
}

// CreateQuest handles the quest form.
func (qc *QuestController) CreateQuest(c *gin.Context) {
	var draft models.QuestDraft
	if err := c.ShouldBind(&draft); err != nil {
		logger.Warn.Printf("CreateQuest: invalid form: %v", err)
		backToTab(c, TabQuests, flashError, "Name and description are required; reward tier must be BP1 or BP3 and type Standard or P2P.")
		return
	}

	id, err := qc.Service.Create(c.Request.Context(), middleware.CurrentOperator(c), draft)
	if err != nil {
		backToTab(c, TabQuests, flashError, "Error creating quest: "+err.Error())
		return
	}
	backToTab(c, TabQuests, flashSuccess, fmt.Sprintf("Quest %q created (%s).", draft.Name, models.ActivationPath(id)))
}

// DeleteQuest removes a quest. The browser asks for confirmation first.
func (qc *QuestController) DeleteQuest(c *gin.Context) {
	id := c.Param("id")
	if err := qc.Service.Delete(c.Request.Context(), middleware.CurrentOperator(c), id); err != nil {
		backToTab(c, TabQuests, flashError, "Error deleting quest: "+err.Error())
		return
	}
	backToTab(c, TabQuests, flashSuccess, "Quest deleted.")
}

// QRCode serves the quest's activation QR code as a PNG.
func (qc *QuestController) QRCode(c *gin.Context) {
	size := defaultQRSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be between 1 and %d", maxQRSize)})
			return
		}
		size = n
	}

	png, err := qc.Service.QRCode(c.Request.Context(), c.Param("id"), size)
	if err != nil {
		logger.Warn.Printf("QRCode: quest %s: %v", c.Param("id"), err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
