package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestApplyReward(t *testing.T) {
	cat := mustCatalog(t)

	t.Run("gold", func(t *testing.T) {
		gs := NewGameState(cat)
		actions := ApplyReward(gs, cat, catalog.RewardSpec{Kind: "gold", Amount: 25})
		assert.Empty(t, actions)
		assert.Equal(t, uint64(25), gs.Player.Gold)
	})

	t.Run("item", func(t *testing.T) {
		gs := NewGameState(cat)
		actions := ApplyReward(gs, cat, catalog.RewardSpec{Kind: "item", ItemID: "berry", Amount: 3})
		assert.Empty(t, actions)
		assert.Equal(t, 3, gs.Player.Inventory["berry"])
	})

	t.Run("item without amount defaults to one", func(t *testing.T) {
		gs := NewGameState(cat)
		ApplyReward(gs, cat, catalog.RewardSpec{Kind: "item", ItemID: "berry"})
		assert.Equal(t, 1, gs.Player.Inventory["berry"])
	})

	t.Run("experience", func(t *testing.T) {
		gs := NewGameState(cat)
		actions := ApplyReward(gs, cat, catalog.RewardSpec{Kind: "experience", SkillID: "foraging", Amount: 30})
		assert.Empty(t, actions)
		assert.Equal(t, 30, gs.Player.Skills["foraging"].XP)
		assert.Equal(t, 1, gs.Player.Skills["foraging"].Level)
	})
}

func TestApplyRewardCompensation(t *testing.T) {
	cat := mustCatalog(t)

	tests := []struct {
		name     string
		spec     catalog.RewardSpec
		wantGold uint64
	}{
		{
			name:     "unknown kind with a known item pays its value",
			spec:     catalog.RewardSpec{Kind: "blessing", ItemID: "berry", Amount: 3},
			wantGold: 15, // berry value 5 x 3
		},
		{
			name:     "item reward without id pays the flat fallback",
			spec:     catalog.RewardSpec{Kind: "item", Amount: 2},
			wantGold: FallbackCompensationGold,
		},
		{
			name:     "unknown item pays the flat fallback",
			spec:     catalog.RewardSpec{Kind: "item", ItemID: "moon_rock", Amount: 2},
			wantGold: FallbackCompensationGold,
		},
		{
			name:     "gold reward without amount",
			spec:     catalog.RewardSpec{Kind: "gold"},
			wantGold: FallbackCompensationGold,
		},
		{
			name:     "experience without a skill",
			spec:     catalog.RewardSpec{Kind: "experience", Amount: 30},
			wantGold: FallbackCompensationGold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(cat)
			actions := ApplyReward(gs, cat, tt.spec)

			assert.Equal(t, tt.wantGold, gs.Player.Gold)
			require.Len(t, actions, 1, "substitution must be observable")
			assert.Equal(t, engine.ActionRewardSubstituted, actions[0].Kind)
			assert.Contains(t, actions[0].Detail, "compensated")
		})
	}
}

func TestPlayerStateSkills(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)

	assert.Equal(t, 0, gs.Player.SkillLevel("fishing"), "unknown skills are level 0")

	leveled := gs.Player.AddSkillXP("fishing", 300)
	assert.True(t, leveled)
	assert.Equal(t, 2, gs.Player.SkillLevel("fishing"))

	leveled = gs.Player.AddSkillXP("fishing", 10)
	assert.False(t, leveled)
	assert.Equal(t, 10, gs.Player.Skills["fishing"].XP)
}
