// Package offline reconciles elapsed real time into bulk simulated
// progress when a session resumes: pet replay with early death stop,
// travel, and queued world activities.
package offline

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/world"
)

// MaxOfflineDays caps how much elapsed time converts into ticks. Time
// beyond the cap is discarded, not banked.
const MaxOfflineDays = 7

// MajorEvent is a notable occurrence surfaced to the player after
// catch-up.
type MajorEvent struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// Result reports what the catch-up applied.
type Result struct {
	TicksElapsed   int          // full elapsed ticks before capping
	TicksProcessed int          // ticks actually replayed
	Events         []MajorEvent // deduplicated major events
	Applied        bool
}

// CalculateOfflineProgression replays up to the capped tick count against
// the game state in place. Pet replay stops early on death; world travel
// and queued activities always advance by the full capped count.
func CalculateOfflineProgression(gs *world.GameState, cat *catalog.Catalog, tickInterval time.Duration, now time.Time, rng *rand.Rand) Result {
	if !gs.Settings.OfflineProgressionEnabled || gs.LastSaveTime.IsZero() {
		return Result{}
	}
	ticksElapsed := int(now.Sub(gs.LastSaveTime) / tickInterval)
	if ticksElapsed < 1 {
		return Result{}
	}

	maxTicks := int(MaxOfflineDays * 24 * time.Hour / tickInterval)
	ticks := ticksElapsed
	if ticks > maxTicks {
		ticks = maxTicks
	}

	slog.Info("offline catch-up",
		"away", humanize.RelTime(gs.LastSaveTime, now, "ago", "from now"),
		"ticks_elapsed", ticksElapsed,
		"ticks_processed", ticks,
	)

	var events []MajorEvent

	// Replay the pet tick by tick so growth, care, and session completion
	// behave as live play would. Death stops pet replay; the world keeps
	// advancing below.
	died := false
	for i := 0; i < ticks && gs.Pet != nil && !died; i++ {
		res := engine.ProcessPetTick(gs.Pet, cat)
		gs.Pet = res.Pet
		for _, a := range res.Actions {
			switch a.Kind {
			case engine.ActionPetDied:
				died = true
				events = append(events, MajorEvent{Kind: a.Kind.String(), Detail: a.Detail})
			case engine.ActionPetGrew:
				events = append(events, MajorEvent{
					Kind:   a.Kind.String(),
					Detail: a.PreviousStage.String() + " to " + a.NewStage.String(),
				})
			case engine.ActionTrainingCompleted:
				events = append(events, MajorEvent{Kind: a.Kind.String(), Detail: a.Detail})
			}
		}
		for _, a := range world.AdvanceExploration(gs, cat, rng, nil, gs.TickCount+uint64(i)+1) {
			events = append(events, MajorEvent{Kind: a.Kind.String(), Detail: a.Detail})
		}
	}
	if died {
		gs.Pet = nil
		gs.World.Travel = nil
		gs.World.CurrentLocationID = cat.StartLocationID()
	}

	for _, a := range world.AdvanceTravel(gs, ticks) {
		events = append(events, MajorEvent{Kind: a.Kind.String(), Detail: a.Detail})
	}
	for _, a := range world.AdvanceActivities(gs, cat, ticks, rng) {
		events = append(events, MajorEvent{Kind: a.Kind.String(), Detail: a.Detail})
	}

	gs.TickCount += uint64(ticks)

	return Result{
		TicksElapsed:   ticksElapsed,
		TicksProcessed: ticks,
		Events:         dedupe(events),
		Applied:        true,
	}
}

func dedupe(events []MajorEvent) []MajorEvent {
	seen := make(map[MajorEvent]bool, len(events))
	out := events[:0]
	for _, e := range events {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
