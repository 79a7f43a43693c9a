// Package activity provides the gated state machine for training and
// exploration sessions: start checks, per-tick advancement, completion
// payouts, cancellation refunds, and drop resolution.
package activity

import (
	"fmt"

	"github.com/talgya/mini-pet/internal/pet"
)

// GateResult is the value-shaped outcome of every gating check. Domain
// refusals are not errors; callers branch on Allowed.
type GateResult struct {
	Allowed bool
	Reason  string
}

func allowed() GateResult {
	return GateResult{Allowed: true}
}

func denied(format string, args ...any) GateResult {
	return GateResult{Reason: fmt.Sprintf(format, args...)}
}

// CheckActivityRequirements is the shared gate: the pet must be idle, and
// when requiredEnergy (display units) is positive it must be affordable.
// sameState distinguishes "already doing this" from "busy with that".
func CheckActivityRequirements(p *pet.Pet, label string, requiredEnergy int, sameState pet.ActivityState) GateResult {
	if p.State != pet.StateIdle {
		if p.State == sameState {
			return denied("%s is already %s", p.Name, p.State)
		}
		return denied("%s cannot %s while %s", p.Name, label, p.State)
	}
	if requiredEnergy > 0 && pet.ToDisplay(p.Energy) < requiredEnergy {
		return denied("not enough energy: need %d, have %d", requiredEnergy, pet.ToDisplay(p.Energy))
	}
	return allowed()
}
