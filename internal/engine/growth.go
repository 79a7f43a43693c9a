package engine

import (
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// GrowthResult reports one tick of aging. On a stage transition the base
// battle stats are recomputed from the new stage's table while trained
// and bonus layers carry over unchanged.
type GrowthResult struct {
	Growth               pet.Growth
	Base                 pet.BattleStats
	Battle               pet.BattleStats
	StageTransitioned    bool
	SubstageTransitioned bool
	PreviousStage        pet.Stage
	PreviousSubstage     int
}

// ProcessGrowthTick increments age and derives the stage/substage from
// the species age-threshold table.
func ProcessGrowthTick(p *pet.Pet, cat *catalog.Catalog) GrowthResult {
	g := p.Growth
	g.AgeTicks++

	newStage, newSubstage := cat.StageFor(p.SpeciesID, g.AgeTicks)

	res := GrowthResult{
		Base:             p.Base,
		Battle:           p.Battle,
		PreviousStage:    g.Stage,
		PreviousSubstage: g.Substage,
	}

	switch {
	case newStage != g.Stage:
		res.StageTransitioned = true
		res.Base = cat.BaseBattleStats(p.SpeciesID, newStage)
		res.Battle = res.Base.Add(p.Trained).Add(p.Bonus)
	case newSubstage != g.Substage:
		res.SubstageTransitioned = true
	}

	g.Stage = newStage
	g.Substage = newSubstage
	res.Growth = g
	return res
}
