// File: models/quest.go
package models

import (
	"fmt"
	"net/url"
	"time"
)

// RewardTier is the booster pack size granted by a quest.
type RewardTier string

// QuestType distinguishes ordinary quests from meet-the-player quests.
type QuestType string

const (
	RewardTierBP1 RewardTier = "BP1"
	RewardTierBP3 RewardTier = "BP3"

	QuestTypeStandard QuestType = "Standard"
	QuestTypeP2P      QuestType = "P2P"
)

// Valid reports whether t is a known tier.
func (t RewardTier) Valid() bool {
	return t == RewardTierBP1 || t == RewardTierBP3
}

// Valid reports whether t is a known quest type.
func (t QuestType) Valid() bool {
	return t == QuestTypeStandard || t == QuestTypeP2P
}

// Quest is a document in the quests_master collection.
type Quest struct {
	ID             string     `json:"id" firestore:"-"`
	Name           string     `json:"name" firestore:"name"`
	Description    string     `json:"description" firestore:"description"`
	RewardTier     RewardTier `json:"rewardBoosterPackTier" firestore:"rewardBoosterPackTier"`
	Type           QuestType  `json:"type" firestore:"type"`
	QuestFields    []string   `json:"questFields" firestore:"questFields"`
	ActivationPath string     `json:"qrCodePath" firestore:"qrCodePath"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
}

// QuestDraft is the operator's input for a new quest.
type QuestDraft struct {
	Name        string     `form:"name" binding:"required"`
	Description string     `form:"description" binding:"required"`
	RewardTier  RewardTier `form:"rewardTier" binding:"required,oneof=BP1 BP3"`
	Type        QuestType  `form:"questType" binding:"required,oneof=Standard P2P"`
}

// ActivationPath derives the printed unlock path for a quest identifier.
// The result is embedded in QR codes, so it must never change for an id.
func ActivationPath(questID string) string {
	return fmt.Sprintf("/quest/unlock?id=%s", url.QueryEscape(questID))
}
