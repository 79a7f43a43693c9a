package engine

import (
	"github.com/talgya/mini-pet/internal/pet"
)

// Waste generation runs on a decaying timer rather than a tick countdown:
// a mid-cycle sleep transition changes the rate of progress toward the
// next dropping without losing the partial progress already made.
const (
	PoopMicroThreshold = 48_000
	PoopDecayAwake     = 100 // full cycle in 480 ticks
	PoopDecaySleeping  = 50  // full cycle in 960 ticks
	MaxPoopCount       = 50
)

// ProcessPoopTick advances the waste timer one tick. Returns the new state
// and whether a dropping was produced.
func ProcessPoopTick(state pet.PoopState, isSleeping bool) (pet.PoopState, bool) {
	decay := int64(PoopDecayAwake)
	if isSleeping {
		decay = PoopDecaySleeping
	}

	newTimer := state.TicksUntilNext - decay
	if newTimer > 0 {
		state.TicksUntilNext = newTimer
		return state, false
	}

	if state.Count < MaxPoopCount {
		state.Count++
	}
	// Carry the overshoot into the next cycle so it isn't lengthened.
	state.TicksUntilNext = PoopMicroThreshold + newTimer
	return state, true
}

// RemovePoop clears up to amount droppings, never going negative.
func RemovePoop(count, amount int) int {
	if amount >= count {
		return 0
	}
	return count - amount
}
