package engine

// Energy regeneration in micro-units per tick. Sleeping regenerates
// faster; energy is only debited by activity starts and care actions.
const (
	EnergyRegenAwake    = 50
	EnergyRegenSleeping = 150
)

// ApplyEnergyRegen adds one tick of regeneration, capped at max.
func ApplyEnergyRegen(current, max int64, isSleeping bool) int64 {
	regen := int64(EnergyRegenAwake)
	if isSleeping {
		regen = EnergyRegenSleeping
	}
	if current+regen > max {
		return max
	}
	return current + regen
}
