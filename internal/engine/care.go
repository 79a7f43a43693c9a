// Package engine provides the deterministic per-tick simulation core:
// growth, care decay, waste, energy, skills, and the tick processor that
// composes them into one pure state transition.
package engine

import (
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// Care decay rates in micro-units per tick. Sleeping pets decay slower.
const (
	CareDecayAwake    = 24
	CareDecaySleeping = 8

	// At this many droppings the environment drains care life directly,
	// on top of any critical-stat drain.
	PoopPenaltyThreshold = 7
	PoopCareLifeDrain    = 8
)

// careLifeDrain maps the number of zeroed care stats to the per-tick
// care-life drain. Drain floors stack additively with the poop penalty.
var careLifeDrain = [4]int64{0, 8, 25, 50}

// CareLifeChange evaluates the care-life delta for one tick from the
// pre-decay care stats. Any drain wins over recovery: a pet sitting in
// filth does not recover no matter how well fed it is.
func CareLifeChange(p *pet.Pet, max catalog.MaxStats) int64 {
	critical := 0
	for _, v := range [3]int64{p.Care.Satiety, p.Care.Hydration, p.Care.Happiness} {
		if pet.ToDisplay(v) == 0 {
			critical++
		}
	}

	var drain int64
	if critical > 0 {
		drain = careLifeDrain[critical]
	}
	if p.Poop.Count >= PoopPenaltyThreshold {
		drain += PoopCareLifeDrain
	}
	if drain > 0 {
		return -drain
	}

	// Recovery is tiered on the worst of the three stats.
	minPercent := int64(101)
	for _, v := range [3]int64{p.Care.Satiety, p.Care.Hydration, p.Care.Happiness} {
		var percent int64
		if max.Care > 0 {
			percent = v * 100 / max.Care
		}
		if percent < minPercent {
			minPercent = percent
		}
	}
	switch {
	case minPercent >= 100:
		return 25
	case minPercent >= 75:
		return 16
	case minPercent >= 50:
		return 8
	}
	return 0
}

// ApplyCareLifeChange clamps the new care-life value to [0, max].
func ApplyCareLifeChange(current, delta, maxCareLife int64) int64 {
	return pet.ClampMicro(current+delta, maxCareLife)
}

// poopMultiplierHalves returns the happiness decay multiplier for a poop
// count, expressed in halves so the floored product stays integer:
// 0–2 → 1.0, 3–4 → 1.5, 5–6 → 2.0, 7+ → 3.0.
func poopMultiplierHalves(count int) int64 {
	switch {
	case count >= 7:
		return 6
	case count >= 5:
		return 4
	case count >= 3:
		return 3
	}
	return 2
}

// ApplyCareDecay decays the three care stats for one tick. Happiness
// decays faster in a dirty environment.
func ApplyCareDecay(p *pet.Pet, max catalog.MaxStats) pet.CareStats {
	rate := int64(CareDecayAwake)
	if p.Sleep.IsSleeping {
		rate = CareDecaySleeping
	}
	happinessDecay := rate * poopMultiplierHalves(p.Poop.Count) / 2

	return pet.CareStats{
		Satiety:   pet.ClampMicro(p.Care.Satiety-rate, max.Care),
		Hydration: pet.ClampMicro(p.Care.Hydration-rate, max.Care),
		Happiness: pet.ClampMicro(p.Care.Happiness-happinessDecay, max.Care),
	}
}
