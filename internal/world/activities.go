package world

import (
	"math/rand"

	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
)

// QueueActivity enqueues a background world activity.
func QueueActivity(gs *GameState, cat *catalog.Catalog, activityID string) activity.GateResult {
	wa, ok := cat.WorldActivities[activityID]
	if !ok {
		return activity.GateResult{Reason: "unknown world activity " + activityID}
	}
	gs.World.Activities = append(gs.World.Activities, QueuedActivity{
		ActivityID:     wa.ID,
		TicksRemaining: wa.DurationTicks,
	})
	return activity.GateResult{Allowed: true}
}

// AdvanceActivities subtracts ticks from every queued activity. Each one
// that completes rolls its reward entries independently — every entry is
// its own Bernoulli trial against rng, unlike exploration's single shared
// roll — and applies the winners immediately.
func AdvanceActivities(gs *GameState, cat *catalog.Catalog, ticks int, rng *rand.Rand) []engine.Action {
	if ticks <= 0 || len(gs.World.Activities) == 0 {
		return nil
	}

	var actions []engine.Action
	remaining := gs.World.Activities[:0]
	for _, qa := range gs.World.Activities {
		qa.TicksRemaining -= ticks
		if qa.TicksRemaining > 0 {
			remaining = append(remaining, qa)
			continue
		}

		actions = append(actions, engine.Action{Kind: engine.ActionActivityCompleted, Detail: qa.ActivityID})
		wa, ok := cat.WorldActivities[qa.ActivityID]
		if !ok {
			continue
		}
		for _, spec := range wa.Rewards {
			if rng.Float64() <= spec.Probability {
				actions = append(actions, ApplyReward(gs, cat, spec)...)
			}
		}
	}
	gs.World.Activities = remaining
	return actions
}
