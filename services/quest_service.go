// File: services/quest_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
)

// QuestServiceInterface is what the quest controller depends on.
type QuestServiceInterface interface {
	Create(ctx context.Context, operator models.Operator, draft models.QuestDraft) (string, error)
	Delete(ctx context.Context, operator models.Operator, questID string) error
	List(ctx context.Context) ([]models.Quest, error)
	QRCode(ctx context.Context, questID string, size int) ([]byte, error)
}

// QuestService manages the quest catalog.
type QuestService struct {
	quests       QuestStore
	metrics      metrics.Publisher
	publicAppURL string
	encode       QRCodeEncoder
	now          func() time.Time
	newID        func() string
}

// NewQuestService wires the quest store. publicAppURL prefixes activation
// paths when they are rendered as QR codes.
func NewQuestService(quests QuestStore, pub metrics.Publisher, publicAppURL string) *QuestService {
	return &QuestService{
		quests:       quests,
		metrics:      pub,
		publicAppURL: strings.TrimRight(publicAppURL, "/"),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Create assigns a fresh identifier, derives its activation path and
// persists the quest before returning the identifier.
func (s *QuestService) Create(ctx context.Context, operator models.Operator, draft models.QuestDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Description) == "" {
		return "", fmt.Errorf("name and description are required: %w", ErrInvalidInput)
	}
	if !draft.RewardTier.Valid() {
		return "", fmt.Errorf("reward tier %q: %w", draft.RewardTier, ErrInvalidInput)
	}
	if !draft.Type.Valid() {
		return "", fmt.Errorf("quest type %q: %w", draft.Type, ErrInvalidInput)
	}

	id := s.newID()
	quest := models.Quest{
		ID:             id,
		Name:           draft.Name,
		Description:    draft.Description,
		RewardTier:     draft.RewardTier,
		Type:           draft.Type,
		QuestFields:    []string{},
		ActivationPath: models.ActivationPath(id),
		CreatedAt:      s.now(),
	}
	if err := s.quests.CreateQuest(ctx, quest); err != nil {
		logger.Error.Printf("[QuestService.Create] failed to store quest %q: %v", draft.Name, err)
		return "", err
	}

	s.metrics.Count(metrics.QuestsCreated, 1, "Type", string(draft.Type))
	logger.Info.Printf("[QuestService.Create] %s created quest %s (%s)", operator.Username, id, quest.ActivationPath)
	return id, nil
}

// Delete removes a quest permanently. Printed QR codes for it stop resolving.
func (s *QuestService) Delete(ctx context.Context, operator models.Operator, questID string) error {
	if strings.TrimSpace(questID) == "" {
		return fmt.Errorf("quest id is required: %w", ErrInvalidInput)
	}
	if err := s.quests.DeleteQuest(ctx, questID); err != nil {
		logger.Error.Printf("[QuestService.Delete] failed to delete quest %s: %v", questID, err)
		return err
	}
	s.metrics.Count(metrics.QuestsDeleted, 1)
	logger.Info.Printf("[QuestService.Delete] %s deleted quest %s", operator.Username, questID)
	return nil
}

// List fetches the catalog once.
func (s *QuestService) List(ctx context.Context) ([]models.Quest, error) {
	return s.quests.ListQuests(ctx)
}

// QRCode renders the quest's full activation URL as a PNG.
func (s *QuestService) QRCode(ctx context.Context, questID string, size int) ([]byte, error) {
	quest, err := s.quests.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	return GenerateQRCode(s.publicAppURL+quest.ActivationPath, size, s.encode)
}
