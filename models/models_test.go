// file: models/models_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardTier_Valid(t *testing.T) {
	assert.True(t, RewardTierBP1.Valid())
	assert.True(t, RewardTierBP3.Valid())
	assert.False(t, RewardTier("BP2").Valid())
	assert.False(t, RewardTier("bp1").Valid())
}

func TestQuestType_Valid(t *testing.T) {
	assert.True(t, QuestTypeStandard.Valid())
	assert.True(t, QuestTypeP2P.Valid())
	assert.False(t, QuestType("p2p").Valid())
}

func TestSubmissionStatus_IsDecision(t *testing.T) {
	assert.True(t, StatusApproved.IsDecision())
	assert.True(t, StatusRejected.IsDecision())
	assert.False(t, StatusPending.IsDecision())
	assert.False(t, SubmissionStatus("archived").IsDecision())
}

func TestActivationPath_IsDeterministic(t *testing.T) {
	id := "6f1c2a9e-1b7d-4c1e-9a55-2b0f1d3e4c5a"
	assert.Equal(t, "/quest/unlock?id="+id, ActivationPath(id))
	assert.Equal(t, ActivationPath(id), ActivationPath(id))
	assert.NotEqual(t, ActivationPath(id), ActivationPath("other"))
}
