package activity

import (
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// CanStartTraining checks facility/session existence, the shared gate,
// and the session's minimum growth stage.
func CanStartTraining(p *pet.Pet, cat *catalog.Catalog, facilityID, sessionType string) GateResult {
	facility, ok := cat.Facilities[facilityID]
	if !ok {
		return denied("unknown facility %q", facilityID)
	}
	session, ok := facility.Sessions[sessionType]
	if !ok {
		return denied("facility %q has no %q session", facilityID, sessionType)
	}
	if gate := CheckActivityRequirements(p, "train", session.EnergyCost, pet.StateTraining); !gate.Allowed {
		return gate
	}
	if p.Growth.Stage < session.MinStage {
		return denied("%s session requires %s stage, pet is %s", sessionType, session.MinStage, p.Growth.Stage)
	}
	return allowed()
}

// StartTraining debits the session's energy cost and enters Training.
// Returns the input pet unchanged when the gate refuses.
func StartTraining(p *pet.Pet, cat *catalog.Catalog, facilityID, sessionType string, currentTick uint64) (*pet.Pet, GateResult) {
	gate := CanStartTraining(p, cat, facilityID, sessionType)
	if !gate.Allowed {
		return p, gate
	}
	session := cat.Facilities[facilityID].Sessions[sessionType]
	cost := pet.ToMicro(session.EnergyCost)

	next := p.Clone()
	next.Energy -= cost
	next.State = pet.StateTraining
	next.Training = &pet.ActiveTraining{
		FacilityID:     facilityID,
		SessionType:    sessionType,
		StartTick:      currentTick,
		DurationTicks:  session.DurationTicks,
		TicksRemaining: session.DurationTicks,
		EnergyCost:     cost,
	}
	return next, gate
}

// ProcessTrainingTick advances an active session by one tick. Returns nil
// when the session completes.
func ProcessTrainingTick(rec pet.ActiveTraining) *pet.ActiveTraining {
	rec.TicksRemaining--
	if rec.TicksRemaining <= 0 {
		return nil
	}
	return &rec
}

// ApplyTrainingCompletion pays out the facility's stat gains. Gains land
// on both the trained layer (so they survive stage recomputes) and the
// live battle stats, then the pet returns to Idle.
func ApplyTrainingCompletion(p *pet.Pet, cat *catalog.Catalog) *pet.Pet {
	next := p.Clone()
	if rec := next.Training; rec != nil {
		if facility, ok := cat.Facilities[rec.FacilityID]; ok {
			if session, ok := facility.Sessions[rec.SessionType]; ok {
				next.Trained = next.Trained.
					WithStat(facility.Primary, session.PrimaryGain).
					WithStat(facility.Secondary, session.SecondaryGain)
				next.Battle = next.Battle.
					WithStat(facility.Primary, session.PrimaryGain).
					WithStat(facility.Secondary, session.SecondaryGain)
			}
		}
	}
	next.Training = nil
	next.State = pet.StateIdle
	return next
}

// CancelTraining refunds the recorded energy cost in full, clamped to the
// stage's max energy, and returns the pet to Idle. Always succeeds when a
// session is active.
func CancelTraining(p *pet.Pet, maxEnergy int64) *pet.Pet {
	next := p.Clone()
	if next.Training != nil {
		next.Energy = pet.ClampMicro(next.Energy+next.Training.EnergyCost, maxEnergy)
	}
	next.Training = nil
	next.State = pet.StateIdle
	return next
}
