package world

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
)

func hasAction(actions []engine.Action, kind engine.ActionKind) bool {
	for _, a := range actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func TestStartTravel(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	require.Equal(t, "meadow", gs.World.CurrentLocationID)

	gate := StartTravel(gs, cat, "riverbank")
	require.True(t, gate.Allowed, gate.Reason)
	require.NotNil(t, gs.World.Travel)
	assert.Equal(t, "riverbank", gs.World.Travel.DestinationID)
	assert.Equal(t, 240, gs.World.Travel.TicksRemaining)
}

func TestStartTravelRefusals(t *testing.T) {
	cat := mustCatalog(t)

	t.Run("already at destination", func(t *testing.T) {
		gs := NewGameState(cat)
		gate := StartTravel(gs, cat, "meadow")
		assert.False(t, gate.Allowed)
		assert.Equal(t, "already at meadow", gate.Reason)
	})

	t.Run("no route", func(t *testing.T) {
		gs := NewGameState(cat)
		gs.World.CurrentLocationID = "riverbank"
		gate := StartTravel(gs, cat, "riverbank_docks")
		assert.False(t, gate.Allowed)
		assert.Contains(t, gate.Reason, "no route")
	})

	t.Run("already travelling", func(t *testing.T) {
		gs := NewGameState(cat)
		require.True(t, StartTravel(gs, cat, "riverbank").Allowed)
		gate := StartTravel(gs, cat, "caverns")
		assert.False(t, gate.Allowed)
		assert.Equal(t, "already travelling to riverbank", gate.Reason)
	})
}

func TestAdvanceTravel(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	require.True(t, StartTravel(gs, cat, "riverbank").Allowed)

	assert.Empty(t, AdvanceTravel(gs, 100))
	assert.Equal(t, 140, gs.World.Travel.TicksRemaining)
	assert.Equal(t, "meadow", gs.World.CurrentLocationID)

	actions := AdvanceTravel(gs, 140)
	assert.True(t, hasAction(actions, engine.ActionTravelCompleted))
	assert.Nil(t, gs.World.Travel)
	assert.Equal(t, "riverbank", gs.World.CurrentLocationID)
}

func TestAdvanceTravelWakesSessionlessPet(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	p, err := engine.NewPet(cat, "sprout", "Nibble", time.Now())
	require.NoError(t, err)
	p.State = pet.StateSleeping
	p.Sleep.IsSleeping = true
	gs.Pet = p

	require.True(t, StartTravel(gs, cat, "riverbank").Allowed)
	AdvanceTravel(gs, 240)

	assert.Equal(t, pet.StateIdle, gs.Pet.State)
	assert.False(t, gs.Pet.Sleep.IsSleeping)
}

func TestQueueAndAdvanceActivities(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	rng := rand.New(rand.NewSource(1))

	gate := QueueActivity(gs, cat, "berry_harvest")
	require.True(t, gate.Allowed, gate.Reason)
	require.Len(t, gs.World.Activities, 1)
	assert.Equal(t, 960, gs.World.Activities[0].TicksRemaining)

	assert.Empty(t, AdvanceActivities(gs, cat, 100, rng))
	assert.Equal(t, 860, gs.World.Activities[0].TicksRemaining)

	actions := AdvanceActivities(gs, cat, 860, rng)
	assert.True(t, hasAction(actions, engine.ActionActivityCompleted))
	assert.Empty(t, gs.World.Activities)

	// The 25-gold entry has probability 1.0, so it always pays.
	assert.GreaterOrEqual(t, gs.Player.Gold, uint64(25))
}

func TestQueueActivityUnknown(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)

	gate := QueueActivity(gs, cat, "moon_festival")
	assert.False(t, gate.Allowed)
	assert.Contains(t, gate.Reason, "unknown world activity")
}

func TestAdvanceExploration(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	rng := rand.New(rand.NewSource(1))

	p, err := engine.NewPet(cat, "sprout", "Nibble", time.Now())
	require.NoError(t, err)
	p.State = pet.StateExploring
	p.Exploration = &pet.ActiveExploration{
		ActivityID:     "forage",
		LocationID:     "meadow",
		DurationTicks:  20,
		TicksRemaining: 2,
	}
	gs.Pet = p

	assert.Empty(t, AdvanceExploration(gs, cat, rng, nil, 1))
	require.NotNil(t, gs.Pet.Exploration)
	assert.Equal(t, 1, gs.Pet.Exploration.TicksRemaining)

	actions := AdvanceExploration(gs, cat, rng, nil, 2)
	assert.True(t, hasAction(actions, engine.ActionExplorationCompleted))
	assert.Equal(t, pet.StateIdle, gs.Pet.State)
	assert.Nil(t, gs.Pet.Exploration)

	// The zero-threshold berry entry drops on any roll, and foraging XP
	// lands on the player.
	assert.GreaterOrEqual(t, gs.Player.Inventory["berry"], 2)
	assert.Equal(t, 15, gs.Player.Skills["foraging"].XP)
}

func TestAdvanceExplorationIgnoresIdlePet(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, AdvanceExploration(gs, cat, rng, nil, 1), "no pet")

	p, err := engine.NewPet(cat, "sprout", "Nibble", time.Now())
	require.NoError(t, err)
	gs.Pet = p
	assert.Empty(t, AdvanceExploration(gs, cat, rng, nil, 1), "idle pet")
}

type recordingReporter struct {
	explorations []string
	items        map[string]int
}

func (r *recordingReporter) ExplorationCompleted(activityID string) {
	r.explorations = append(r.explorations, activityID)
}

func (r *recordingReporter) ItemCollected(itemID string, quantity int) {
	if r.items == nil {
		r.items = map[string]int{}
	}
	r.items[itemID] += quantity
}

func TestAdvanceExplorationReportsObjectives(t *testing.T) {
	cat := mustCatalog(t)
	gs := NewGameState(cat)
	rng := rand.New(rand.NewSource(1))
	reporter := &recordingReporter{}

	p, err := engine.NewPet(cat, "sprout", "Nibble", time.Now())
	require.NoError(t, err)
	p.State = pet.StateExploring
	p.Exploration = &pet.ActiveExploration{
		ActivityID:     "forage",
		LocationID:     "meadow",
		TicksRemaining: 1,
	}
	gs.Pet = p

	AdvanceExploration(gs, cat, rng, reporter, 1)

	assert.Equal(t, []string{"forage"}, reporter.explorations)
	assert.GreaterOrEqual(t, reporter.items["berry"], 2)
}
