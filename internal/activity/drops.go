package activity

import (
	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

// CalculateExplorationDrops resolves every entry across the named tables
// against one shared roll in [0,1): an entry is included iff its own
// requirements are met and roll >= minRoll. Entries are not independent
// trials — a single favorable roll satisfies every low-threshold entry at
// once. Quantities aggregate per item id.
func CalculateExplorationDrops(cat *catalog.Catalog, tableIDs []string, stage pet.Stage, skills SkillLevels, completedQuests map[string]bool, roll float64) map[string]int {
	drops := map[string]int{}
	for _, tableID := range tableIDs {
		for _, entry := range cat.DropTables[tableID] {
			if ok, _ := MeetsRequirements(entry.Requirements, stage, skills, completedQuests); !ok {
				continue
			}
			if roll >= entry.MinRoll {
				drops[entry.ItemID] += entry.Quantity
			}
		}
	}
	return drops
}
