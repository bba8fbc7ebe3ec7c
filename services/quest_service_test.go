// file: services/quest_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
)

func validDraft() models.QuestDraft {
	return models.QuestDraft{
		Name:        "Find the booth",
		Description: "Scan the code at booth 12",
		RewardTier:  models.RewardTierBP1,
		Type:        models.QuestTypeStandard,
	}
}

func TestQuestService_Create(t *testing.T) {
	store := NewMemoryStore()
	rec := &recordingMetrics{}
	svc := NewQuestService(store, rec, "https://cards.example/")
	svc.newID = func() string { return "q-123" }
	fixed := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.Create(context.Background(), operator, validDraft())
	require.NoError(t, err)
	assert.Equal(t, "q-123", id)

	quest, err := store.GetQuest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Find the booth", quest.Name)
	assert.Equal(t, models.RewardTierBP1, quest.RewardTier)
	assert.Equal(t, models.QuestTypeStandard, quest.Type)
	assert.Equal(t, "/quest/unlock?id=q-123", quest.ActivationPath)
	assert.NotNil(t, quest.QuestFields)
	assert.Empty(t, quest.QuestFields)
	assert.Equal(t, fixed, quest.CreatedAt)
	assert.Equal(t, float64(1), rec.total(metrics.QuestsCreated))
}

func TestQuestService_Create_UniqueIDs(t *testing.T) {
	store := NewMemoryStore()
	svc := NewQuestService(store, metrics.Nop{}, "")

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := svc.Create(context.Background(), operator, validDraft())
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestQuestService_Create_RejectsInvalidDrafts(t *testing.T) {
	cases := map[string]func(*models.QuestDraft){
		"missing name":  func(d *models.QuestDraft) { d.Name = "" },
		"missing desc":  func(d *models.QuestDraft) { d.Description = " " },
		"unknown tier":  func(d *models.QuestDraft) { d.RewardTier = "BP2" },
		"unknown type":  func(d *models.QuestDraft) { d.Type = "Trivia" },
		"lowercase p2p": func(d *models.QuestDraft) { d.Type = "p2p" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			svc := NewQuestService(store, metrics.Nop{}, "")
			draft := validDraft()
			mutate(&draft)

			_, err := svc.Create(context.Background(), operator, draft)
			assert.ErrorIs(t, err, ErrInvalidInput)

			quests, _ := store.ListQuests(context.Background())
			assert.Empty(t, quests)
		})
	}
}

func TestQuestService_Create_StoreConflict(t *testing.T) {
	store := NewMemoryStore()
	svc := NewQuestService(store, metrics.Nop{}, "")
	svc.newID = func() string { return "dup" }

	_, err := svc.Create(context.Background(), operator, validDraft())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), operator, validDraft())
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestQuestService_Delete(t *testing.T) {
	store := NewMemoryStore()
	svc := NewQuestService(store, metrics.Nop{}, "")

	id, err := svc.Create(context.Background(), operator, validDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), operator, id))
	quests, _ := svc.List(context.Background())
	assert.Empty(t, quests)

	assert.ErrorIs(t, svc.Delete(context.Background(), operator, ""), ErrInvalidInput)
}

func TestQuestService_QRCode(t *testing.T) {
	store := NewMemoryStore()
	svc := NewQuestService(store, metrics.Nop{}, "https://cards.example/")
	svc.newID = func() string { return "q1" }
	var encoded string
	svc.encode = func(content string, _ qrcode.RecoveryLevel, size int) ([]byte, error) {
		encoded = content
		return []byte("png"), nil
	}

	_, err := svc.Create(context.Background(), operator, validDraft())
	require.NoError(t, err)

	png, err := svc.QRCode(context.Background(), "q1", 256)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.Equal(t, "https://cards.example/quest/unlock?id=q1", encoded)

	_, err = svc.QRCode(context.Background(), "missing", 256)
	assert.ErrorIs(t, err, ErrNotFound)
}
