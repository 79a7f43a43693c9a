package world

import (
	"math/rand"

	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
)

// AdvanceExploration moves an in-progress exploration one tick. On
// completion it draws the shared drop roll, folds the payout into the
// player through the reward sink, and reports objective progress.
func AdvanceExploration(gs *GameState, cat *catalog.Catalog, rng *rand.Rand, quests QuestReporter, currentTick uint64) []engine.Action {
	p := gs.Pet
	if p == nil || p.State != pet.StateExploring || p.Exploration == nil {
		return nil
	}

	if advanced := activity.ProcessExplorationTick(*p.Exploration); advanced != nil {
		next := p.Clone()
		next.Exploration = advanced
		gs.Pet = next
		return nil
	}

	next, outcome := activity.CompleteExploration(p, cat, &gs.Player, gs.Player.CompletedQuests, rng.Float64(), currentTick)
	gs.Pet = next
	activity.ApplyExplorationRewards(RewardSink{State: gs, Quests: quests}, outcome)
	return []engine.Action{{Kind: engine.ActionExplorationCompleted, Detail: outcome.ActivityID}}
}
