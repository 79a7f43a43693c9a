// Package pet provides the pet data model: growth, care resources, battle
// stats, and the activity state that gates training and exploration.
package pet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stage is a pet's coarse maturity phase. Ordered: comparisons between
// stages use the ordinal value.
type Stage uint8

const (
	StageBaby     Stage = iota
	StageJuvenile       // Intermediate form
	StageAdult          // Final form
)

// NumStages is the number of growth stages.
const NumStages = 3

func (s Stage) String() string {
	switch s {
	case StageBaby:
		return "baby"
	case StageJuvenile:
		return "juvenile"
	case StageAdult:
		return "adult"
	}
	return "unknown"
}

// ActivityState is the mutually exclusive mode a pet is in. Training and
// Exploring carry an active session record; the other states never do.
type ActivityState uint8

const (
	StateIdle      ActivityState = iota
	StateSleeping                // Entered/exited by sleep control
	StateTraining                // Carries ActiveTraining
	StateExploring               // Carries ActiveExploration
	StateBattling                // Entered/exited by the combat resolver
)

func (s ActivityState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSleeping:
		return "sleeping"
	case StateTraining:
		return "training"
	case StateExploring:
		return "exploring"
	case StateBattling:
		return "battling"
	}
	return "unknown"
}

// BattleStats are the four combat dimensions. The live value is always
// base(stage) + trained + bonus; only trained and bonus survive a stage
// transition.
type BattleStats struct {
	Strength int `json:"strength"`
	Defense  int `json:"defense"`
	Agility  int `json:"agility"`
	Vitality int `json:"vitality"`
}

// Add returns the component-wise sum.
func (b BattleStats) Add(o BattleStats) BattleStats {
	return BattleStats{
		Strength: b.Strength + o.Strength,
		Defense:  b.Defense + o.Defense,
		Agility:  b.Agility + o.Agility,
		Vitality: b.Vitality + o.Vitality,
	}
}

// StatKind names one battle stat dimension, used by training catalogs.
type StatKind uint8

const (
	StatStrength StatKind = iota
	StatDefense
	StatAgility
	StatVitality
)

// WithStat returns a copy with the named dimension increased by gain.
func (b BattleStats) WithStat(kind StatKind, gain int) BattleStats {
	switch kind {
	case StatStrength:
		b.Strength += gain
	case StatDefense:
		b.Defense += gain
	case StatAgility:
		b.Agility += gain
	case StatVitality:
		b.Vitality += gain
	}
	return b
}

// CareStats are the three fast-moving care resources, in micro-units.
type CareStats struct {
	Satiety   int64 `json:"satiety"`
	Hydration int64 `json:"hydration"`
	Happiness int64 `json:"happiness"`
}

// Growth tracks age and maturity phase.
type Growth struct {
	Stage     Stage     `json:"stage"`
	Substage  int       `json:"substage"` // 1-based within the stage
	AgeTicks  uint64    `json:"age_ticks"`
	BirthTime time.Time `json:"birth_time"`
}

// PoopState holds waste accumulation. TicksUntilNext is a decaying timer in
// the same micro scale as the poop threshold, not a plain tick countdown, so
// a mid-cycle sleep transition changes the rate without losing progress.
type PoopState struct {
	Count         int   `json:"count"`
	TicksUntilNext int64 `json:"ticks_until_next"`
}

// SleepState is the awake/asleep switch plus daily bookkeeping.
type SleepState struct {
	IsSleeping      bool   `json:"is_sleeping"`
	SleepStartTick  uint64 `json:"sleep_start_tick"`
	SleepTicksToday int    `json:"sleep_ticks_today"`
}

// ActiveTraining is present iff the pet's state is Training.
type ActiveTraining struct {
	FacilityID     string `json:"facility_id"`
	SessionType    string `json:"session_type"`
	StartTick      uint64 `json:"start_tick"`
	DurationTicks  int    `json:"duration_ticks"`
	TicksRemaining int    `json:"ticks_remaining"`
	EnergyCost     int64  `json:"energy_cost"` // micro-units, for cancel refund
}

// ActiveExploration is present iff the pet's state is Exploring.
type ActiveExploration struct {
	ActivityID     string `json:"activity_id"`
	LocationID     string `json:"location_id"`
	StartTick      uint64 `json:"start_tick"`
	DurationTicks  int    `json:"duration_ticks"`
	TicksRemaining int    `json:"ticks_remaining"`
	EnergyCost     int64  `json:"energy_cost"`
}

// CooldownKey identifies one (location, activity) cooldown slot. It
// encodes as "location|activity" so the cooldown map survives JSON.
type CooldownKey struct {
	LocationID string `json:"location_id"`
	ActivityID string `json:"activity_id"`
}

func (k CooldownKey) MarshalText() ([]byte, error) {
	return []byte(k.LocationID + "|" + k.ActivityID), nil
}

func (k *CooldownKey) UnmarshalText(text []byte) error {
	loc, act, ok := strings.Cut(string(text), "|")
	if !ok {
		return fmt.Errorf("malformed cooldown key %q", text)
	}
	k.LocationID, k.ActivityID = loc, act
	return nil
}

// Pet is the sole mutable aggregate of the simulation core. Every core
// operation takes a Pet and returns a new one; nothing mutates in place.
type Pet struct {
	ID        uuid.UUID `json:"id"`
	SpeciesID string    `json:"species_id"`
	Name      string    `json:"name"`

	Growth   Growth    `json:"growth"`
	Care     CareStats `json:"care"`
	CareLife int64     `json:"care_life"` // micro-units
	Energy   int64     `json:"energy"`    // micro-units
	Poop     PoopState `json:"poop"`
	Sleep    SleepState `json:"sleep"`

	// Battle = Base + Trained + Bonus. Base is recomputed on stage
	// transition; Trained and Bonus persist.
	Base    BattleStats `json:"base_stats"`
	Battle  BattleStats `json:"battle_stats"`
	Trained BattleStats `json:"trained_stats"`
	Bonus   BattleStats `json:"bonus_stats"`

	State       ActivityState      `json:"activity_state"`
	Training    *ActiveTraining    `json:"active_training,omitempty"`
	Exploration *ActiveExploration `json:"active_exploration,omitempty"`

	// Cooldown expiry tick per (location, activity).
	Cooldowns map[CooldownKey]uint64 `json:"activity_cooldowns,omitempty"`
}

// Clone returns a deep copy. Session records and the cooldown map are the
// only indirections; everything else is value state.
func (p *Pet) Clone() *Pet {
	c := *p
	if p.Training != nil {
		t := *p.Training
		c.Training = &t
	}
	if p.Exploration != nil {
		e := *p.Exploration
		c.Exploration = &e
	}
	if p.Cooldowns != nil {
		c.Cooldowns = make(map[CooldownKey]uint64, len(p.Cooldowns))
		for k, v := range p.Cooldowns {
			c.Cooldowns[k] = v
		}
	}
	return &c
}

// CooldownEnd returns the expiry tick for a slot, 0 when none is set.
func (p *Pet) CooldownEnd(locationID, activityID string) uint64 {
	if p.Cooldowns == nil {
		return 0
	}
	return p.Cooldowns[CooldownKey{LocationID: locationID, ActivityID: activityID}]
}
