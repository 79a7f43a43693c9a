package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// NewPet creates a pet at acquisition: baby stage, substage 1, age zero,
// every resource at its stage cap.
func NewPet(cat *catalog.Catalog, speciesID, name string, now time.Time) (*pet.Pet, error) {
	if _, ok := cat.Species[speciesID]; !ok {
		return nil, fmt.Errorf("unknown species %q", speciesID)
	}

	max := cat.MaxStatsFor(speciesID, pet.StageBaby)
	base := cat.BaseBattleStats(speciesID, pet.StageBaby)

	return &pet.Pet{
		ID:        uuid.New(),
		SpeciesID: speciesID,
		Name:      name,
		Growth: pet.Growth{
			Stage:     pet.StageBaby,
			Substage:  1,
			BirthTime: now,
		},
		Care: pet.CareStats{
			Satiety:   max.Care,
			Hydration: max.Care,
			Happiness: max.Care,
		},
		CareLife: max.CareLife,
		Energy:   max.Energy,
		Poop:     pet.PoopState{TicksUntilNext: PoopMicroThreshold},
		Base:     base,
		Battle:   base,
		State:    pet.StateIdle,
	}, nil
}
