package world

import (
	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
)

// StartTravel begins relocation toward a destination with a known route.
func StartTravel(gs *GameState, cat *catalog.Catalog, destinationID string) activity.GateResult {
	if gs.World.Travel != nil {
		return activity.GateResult{Reason: "already travelling to " + gs.World.Travel.DestinationID}
	}
	if destinationID == gs.World.CurrentLocationID {
		return activity.GateResult{Reason: "already at " + destinationID}
	}
	duration, ok := cat.TravelTicks(gs.World.CurrentLocationID, destinationID)
	if !ok {
		return activity.GateResult{Reason: "no route from " + gs.World.CurrentLocationID + " to " + destinationID}
	}
	gs.World.Travel = &TravelState{DestinationID: destinationID, TicksRemaining: duration}
	return activity.GateResult{Allowed: true}
}

// AdvanceTravel subtracts ticks from an in-progress travel. On arrival it
// sets the location, clears the travel state, returns a sessionless pet
// to Idle, and emits a travel_completed action.
func AdvanceTravel(gs *GameState, ticks int) []engine.Action {
	t := gs.World.Travel
	if t == nil || ticks <= 0 {
		return nil
	}
	t.TicksRemaining -= ticks
	if t.TicksRemaining > 0 {
		return nil
	}

	gs.World.CurrentLocationID = t.DestinationID
	gs.World.Travel = nil
	if p := gs.Pet; p != nil && p.Training == nil && p.Exploration == nil && p.State != pet.StateIdle {
		next := p.Clone()
		next.State = pet.StateIdle
		next.Sleep.IsSleeping = false
		gs.Pet = next
	}
	return []engine.Action{{Kind: engine.ActionTravelCompleted, Detail: gs.World.CurrentLocationID}}
}
