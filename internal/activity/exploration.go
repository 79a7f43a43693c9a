package activity

import (
	"strconv"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// ExplorationBaseXP is the per-factor XP base paid on completion.
const ExplorationBaseXP = 15

// SkillLevels resolves a skill id to its current level. Unknown skills
// report level 0.
type SkillLevels interface {
	SkillLevel(id string) int
}

// LevelMap is a plain map adapter for SkillLevels.
type LevelMap map[string]int

func (m LevelMap) SkillLevel(id string) int { return m[id] }

// MeetsRequirements checks minimum skill levels, minimum growth stage,
// and completed quests. The reason names the first unmet requirement.
func MeetsRequirements(reqs catalog.Requirements, stage pet.Stage, skills SkillLevels, completedQuests map[string]bool) (bool, string) {
	if stage < reqs.MinStage {
		return false, "requires " + reqs.MinStage.String() + " stage"
	}
	for id, min := range reqs.Skills {
		if skills.SkillLevel(id) < min {
			return false, requirementReason(id, min)
		}
	}
	for _, q := range reqs.Quests {
		if !completedQuests[q] {
			return false, "requires completing quest " + q
		}
	}
	return true, ""
}

func requirementReason(skillID string, level int) string {
	return "requires " + skillID + " level " + strconv.Itoa(level)
}

// CanStartExploration runs the full start gate, in order: idle state,
// activity and location resolve, the location offers drop tables for the
// activity, activity requirements, energy, cooldown.
func CanStartExploration(p *pet.Pet, cat *catalog.Catalog, skills SkillLevels, completedQuests map[string]bool, locationID, activityID string, currentTick uint64) GateResult {
	if gate := CheckActivityRequirements(p, "explore", 0, pet.StateExploring); !gate.Allowed {
		return gate
	}
	act, ok := cat.Activities[activityID]
	if !ok {
		return denied("unknown activity %q", activityID)
	}
	loc, ok := cat.Locations[locationID]
	if !ok {
		return denied("unknown location %q", locationID)
	}
	if len(loc.DropTables[activityID]) == 0 {
		return denied("%s is not available at %s", act.Name, loc.Name)
	}
	if ok, reason := MeetsRequirements(act.Requirements, p.Growth.Stage, skills, completedQuests); !ok {
		return denied("%s", reason)
	}
	if pet.ToDisplay(p.Energy) < act.EnergyCost {
		return denied("not enough energy: need %d, have %d", act.EnergyCost, pet.ToDisplay(p.Energy))
	}
	if end := p.CooldownEnd(locationID, activityID); end > currentTick {
		return denied("%s is on cooldown for %d more ticks", act.Name, end-currentTick)
	}
	return allowed()
}

// StartExploration debits energy and enters Exploring.
func StartExploration(p *pet.Pet, cat *catalog.Catalog, skills SkillLevels, completedQuests map[string]bool, locationID, activityID string, currentTick uint64) (*pet.Pet, GateResult) {
	gate := CanStartExploration(p, cat, skills, completedQuests, locationID, activityID, currentTick)
	if !gate.Allowed {
		return p, gate
	}
	act := cat.Activities[activityID]
	cost := pet.ToMicro(act.EnergyCost)

	next := p.Clone()
	next.Energy -= cost
	next.State = pet.StateExploring
	next.Exploration = &pet.ActiveExploration{
		ActivityID:     activityID,
		LocationID:     locationID,
		StartTick:      currentTick,
		DurationTicks:  act.DurationTicks,
		TicksRemaining: act.DurationTicks,
		EnergyCost:     cost,
	}
	return next, gate
}

// ProcessExplorationTick advances an active session by one tick. Returns
// nil when the session completes.
func ProcessExplorationTick(rec pet.ActiveExploration) *pet.ActiveExploration {
	rec.TicksRemaining--
	if rec.TicksRemaining <= 0 {
		return nil
	}
	return &rec
}

// ExplorationOutcome is what a completed exploration pays out.
type ExplorationOutcome struct {
	ActivityID  string
	LocationID  string
	Drops       map[string]int // item id → quantity
	SkillXP     map[string]int // skill id → XP
	CooldownEnd uint64         // 0 when the activity has no cooldown
}

// CompleteExploration resolves drops against the location's tables for
// the activity with one shared roll, computes skill XP from the activity's
// factors, arms the cooldown, and returns the pet to Idle.
func CompleteExploration(p *pet.Pet, cat *catalog.Catalog, skills SkillLevels, completedQuests map[string]bool, roll float64, currentTick uint64) (*pet.Pet, ExplorationOutcome) {
	next := p.Clone()
	outcome := ExplorationOutcome{}
	rec := next.Exploration
	if rec == nil {
		next.State = pet.StateIdle
		return next, outcome
	}

	outcome.ActivityID = rec.ActivityID
	outcome.LocationID = rec.LocationID

	act := cat.Activities[rec.ActivityID]
	if loc, ok := cat.Locations[rec.LocationID]; ok {
		outcome.Drops = CalculateExplorationDrops(cat, loc.DropTables[rec.ActivityID], next.Growth.Stage, skills, completedQuests, roll)
	}

	if act != nil {
		outcome.SkillXP = map[string]int{}
		for skillID, factor := range act.SkillFactors {
			if xp := int(ExplorationBaseXP * factor); xp > 0 {
				outcome.SkillXP[skillID] = xp
			}
		}
		if act.CooldownTicks > 0 {
			outcome.CooldownEnd = currentTick + act.CooldownTicks
			if next.Cooldowns == nil {
				next.Cooldowns = map[pet.CooldownKey]uint64{}
			}
			next.Cooldowns[pet.CooldownKey{LocationID: rec.LocationID, ActivityID: rec.ActivityID}] = outcome.CooldownEnd
		}
	}

	next.Exploration = nil
	next.State = pet.StateIdle
	return next, outcome
}

// CancelExploration refunds the recorded energy cost in full, clamped to
// max energy, and returns the pet to Idle.
func CancelExploration(p *pet.Pet, maxEnergy int64) *pet.Pet {
	next := p.Clone()
	if next.Exploration != nil {
		next.Energy = pet.ClampMicro(next.Energy+next.Exploration.EnergyCost, maxEnergy)
	}
	next.Exploration = nil
	next.State = pet.StateIdle
	return next
}
