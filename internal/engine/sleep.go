package engine

import (
	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/pet"
)

// StartSleep puts an idle pet to sleep. Sleep is an exclusive state: a
// training or exploring pet must finish or cancel first.
func StartSleep(p *pet.Pet, currentTick uint64) (*pet.Pet, activity.GateResult) {
	if gate := activity.CheckActivityRequirements(p, "sleep", 0, pet.StateSleeping); !gate.Allowed {
		return p, gate
	}
	next := p.Clone()
	next.State = pet.StateSleeping
	next.Sleep.IsSleeping = true
	next.Sleep.SleepStartTick = currentTick
	return next, activity.GateResult{Allowed: true}
}

// WakeUp returns a sleeping pet to Idle.
func WakeUp(p *pet.Pet) (*pet.Pet, activity.GateResult) {
	if !p.Sleep.IsSleeping {
		return p, activity.GateResult{Reason: p.Name + " is not sleeping"}
	}
	next := p.Clone()
	next.State = pet.StateIdle
	next.Sleep.IsSleeping = false
	next.Sleep.SleepStartTick = 0
	return next, activity.GateResult{Allowed: true}
}
