package engine

import (
	"github.com/talgya/mini-pet/internal/activity"
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// PlayEnergyCost is the display-unit energy a play session costs.
const PlayEnergyCost = 5

// Feed restores satiety by a display-unit amount, clamped to the stage cap.
func Feed(p *pet.Pet, amount int, max catalog.MaxStats) *pet.Pet {
	next := p.Clone()
	next.Care.Satiety = pet.ClampMicro(next.Care.Satiety+pet.ToMicro(amount), max.Care)
	return next
}

// GiveDrink restores hydration by a display-unit amount.
func GiveDrink(p *pet.Pet, amount int, max catalog.MaxStats) *pet.Pet {
	next := p.Clone()
	next.Care.Hydration = pet.ClampMicro(next.Care.Hydration+pet.ToMicro(amount), max.Care)
	return next
}

// Play restores happiness at a small energy cost. Refused when the pet
// cannot afford the energy.
func Play(p *pet.Pet, amount int, max catalog.MaxStats) (*pet.Pet, activity.GateResult) {
	if pet.ToDisplay(p.Energy) < PlayEnergyCost {
		return p, activity.GateResult{Reason: "not enough energy to play"}
	}
	next := p.Clone()
	next.Energy -= pet.ToMicro(PlayEnergyCost)
	next.Care.Happiness = pet.ClampMicro(next.Care.Happiness+pet.ToMicro(amount), max.Care)
	return next, activity.GateResult{Allowed: true}
}

// CleanPoop removes up to amount droppings.
func CleanPoop(p *pet.Pet, amount int) *pet.Pet {
	next := p.Clone()
	next.Poop.Count = RemovePoop(next.Poop.Count, amount)
	return next
}
