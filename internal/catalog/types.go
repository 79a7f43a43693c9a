// Package catalog provides the static content tables: species growth
// tables, training facilities, locations, exploration activities, drop
// tables, items, and world activities. Tables are embedded CSV, decoded
// once at load, and read-only afterwards.
package catalog

import (
	"github.com/talgya/mini-pet/internal/pet"
)

// GrowthRate tiers a species' battle-stat gains per stage transition.
type GrowthRate uint8

const (
	GrowthLow GrowthRate = iota
	GrowthMedium
	GrowthHigh
)

// StageInfo holds one stage's timing and resource caps for a species.
// Caps are stored in micro-units after load.
type StageInfo struct {
	Stage          pet.Stage
	AgeThreshold   uint64 // ageTicks at which this stage begins
	SubstageLength uint64 // ticks per substage within this stage
	MaxCare        int64
	MaxCareLife    int64
	MaxEnergy      int64
}

// Species describes one pet species: growth timing, resource caps per
// stage, and the baseline battle stats the stage bases build on.
type Species struct {
	ID         string
	Name       string
	GrowthRate GrowthRate
	Baseline   pet.BattleStats
	Stages     [pet.NumStages]StageInfo
}

// MaxStats are the per-stage resource caps, micro-units.
type MaxStats struct {
	Care     int64
	CareLife int64
	Energy   int64
}

// TierGain is the stat gain range for one growth-rate tier and dimension.
// The awarded gain is the floored midpoint of the range.
type TierGain struct {
	Min int
	Max int
}

// Midpoint returns the deterministic gain: floor((min+max)/2).
func (g TierGain) Midpoint() int {
	return (g.Min + g.Max) / 2
}

// TrainingSession is one bookable session at a facility.
type TrainingSession struct {
	FacilityID    string
	SessionType   string
	DurationTicks int
	EnergyCost    int // display units
	MinStage      pet.Stage
	PrimaryGain   int
	SecondaryGain int
}

// Facility is a training venue with its stat focus and sessions.
type Facility struct {
	ID        string
	Name      string
	Primary   pet.StatKind
	Secondary pet.StatKind
	Sessions  map[string]*TrainingSession // keyed by session type
}

// Requirements gate an activity or drop entry.
type Requirements struct {
	MinStage pet.Stage         // StageBaby means unrestricted
	Skills   map[string]int    // skill id → minimum level
	Quests   []string          // quest ids that must be completed
}

// Activity is one exploration activity.
type Activity struct {
	ID            string
	Name          string
	DurationTicks int
	EnergyCost    int // display units
	CooldownTicks uint64
	Requirements  Requirements
	SkillFactors  map[string]float64 // skill id → XP factor
}

// DropEntry is one possible item outcome in a drop table. All entries in
// all tables named by a location are tested against one shared roll.
type DropEntry struct {
	TableID      string
	ItemID       string
	MinRoll      float64
	Quantity     int
	Requirements Requirements
}

// Location is a place in the world. DropTables maps an activity offered
// here to the drop table ids it resolves against.
type Location struct {
	ID         string
	Name       string
	Start      bool
	DropTables map[string][]string
}

// Item is a collectable with a gold value, used for compensation when a
// reward cannot be applied as-is.
type Item struct {
	ID    string
	Name  string
	Value int
}

// RouteKey identifies a directed travel edge.
type RouteKey struct {
	From string
	To   string
}

// RewardSpec is a raw reward entry for a world activity. Kind is kept as
// the raw table string: unknown kinds surface at application time and are
// converted to gold compensation there, never dropped silently.
type RewardSpec struct {
	Kind        string
	Amount      int
	ItemID      string
	SkillID     string
	Probability float64
}

// WorldActivity is a queued background activity with per-entry rolled
// rewards on completion.
type WorldActivity struct {
	ID            string
	Name          string
	DurationTicks int
	Rewards       []RewardSpec
}
