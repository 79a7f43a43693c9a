package engine

import (
	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// TicksPerDay at the 15-second cadence.
const TicksPerDay = 5760

// TickResult is the outcome of one pure pet tick: the new snapshot plus
// the typed actions and short state tags derived from it.
type TickResult struct {
	Pet          *pet.Pet
	Actions      []Action
	StateChanges []string
}

// ProcessPetTick advances a pet by exactly one tick. The input is never
// mutated; every sub-step reads the caps implied by the pre-tick stage,
// in fixed order: care life, energy regen, waste, care decay, sleep
// bookkeeping, growth, training advance.
func ProcessPetTick(p *pet.Pet, cat *catalog.Catalog) TickResult {
	next := p.Clone()
	res := TickResult{}

	max := cat.MaxStatsFor(p.SpeciesID, p.Growth.Stage)

	// Care life reacts to the state at the start of the tick, before
	// this tick's decay lands.
	delta := CareLifeChange(p, max)
	next.CareLife = ApplyCareLifeChange(p.CareLife, delta, max.CareLife)
	if next.CareLife == 0 && p.CareLife > 0 {
		res.Actions = append(res.Actions, Action{Kind: ActionPetDied, Detail: p.Name})
		res.StateChanges = append(res.StateChanges, "care_life_depleted")
	}

	next.Energy = ApplyEnergyRegen(p.Energy, max.Energy, p.Sleep.IsSleeping)

	var pooped bool
	next.Poop, pooped = ProcessPoopTick(p.Poop, p.Sleep.IsSleeping)
	if pooped {
		res.Actions = append(res.Actions, Action{Kind: ActionPetPooped, Detail: p.Name})
		res.StateChanges = append(res.StateChanges, "pooped")
	}

	next.Care = ApplyCareDecay(p, max)

	next.Sleep = advanceSleepTimer(p.Sleep, next.Growth.AgeTicks)

	growth := ProcessGrowthTick(p, cat)
	next.Growth = growth.Growth
	next.Base = growth.Base
	next.Battle = growth.Battle
	if growth.StageTransitioned {
		res.Actions = append(res.Actions, Action{
			Kind:          ActionPetGrew,
			Detail:        p.Name,
			PreviousStage: growth.PreviousStage,
			NewStage:      growth.Growth.Stage,
		})
		res.StateChanges = append(res.StateChanges, "stage_transition")
	} else if growth.SubstageTransitioned {
		res.StateChanges = append(res.StateChanges, "substage_transition")
	}

	if next.State == pet.StateTraining && next.Training != nil {
		if advanced := activity.ProcessTrainingTick(*next.Training); advanced != nil {
			next.Training = advanced
		} else {
			facilityID := next.Training.FacilityID
			next = activity.ApplyTrainingCompletion(next, cat)
			res.Actions = append(res.Actions, Action{Kind: ActionTrainingCompleted, Detail: facilityID})
			res.StateChanges = append(res.StateChanges, "training_completed")
		}
	}

	res.Pet = next
	return res
}

// advanceSleepTimer is opaque daily bookkeeping: count sleeping ticks and
// reset the counter at each day boundary.
func advanceSleepTimer(s pet.SleepState, ageTicks uint64) pet.SleepState {
	if ageTicks%TicksPerDay == 0 {
		s.SleepTicksToday = 0
	}
	if s.IsSleeping {
		s.SleepTicksToday++
	}
	return s
}
