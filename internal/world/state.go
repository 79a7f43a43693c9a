// Package world holds the game-state aggregate around the pet: player
// inventory/skills/gold, the current location, travel, and queued world
// activities with their reward rolls.
package world

import (
	"time"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
)

// PlayerState is the player-side progression the core reads and rewards.
type PlayerState struct {
	Gold            uint64                  `json:"gold"`
	Inventory       map[string]int          `json:"inventory"`
	Skills          map[string]engine.Skill `json:"skills"`
	CompletedQuests map[string]bool         `json:"completed_quests"`
}

// SkillLevel implements activity.SkillLevels. Unknown skills are level 0.
func (p *PlayerState) SkillLevel(id string) int {
	if s, ok := p.Skills[id]; ok {
		return s.Level
	}
	return 0
}

// AddSkillXP routes XP into the named skill, creating it at level 1 on
// first contact. Returns whether a level-up occurred.
func (p *PlayerState) AddSkillXP(id string, amount int) bool {
	s, ok := p.Skills[id]
	if !ok {
		s = engine.NewSkill(id)
	}
	s, leveled := engine.AddSkillXP(s, amount)
	p.Skills[id] = s
	return leveled
}

// TravelState is an in-progress relocation between locations.
type TravelState struct {
	DestinationID  string `json:"destination_id"`
	TicksRemaining int    `json:"ticks_remaining"`
}

// QueuedActivity is a background world activity counting down to its
// reward roll.
type QueuedActivity struct {
	ActivityID     string `json:"activity_id"`
	TicksRemaining int    `json:"ticks_remaining"`
}

// WorldState is the location/travel/activity layer.
type WorldState struct {
	CurrentLocationID string           `json:"current_location_id"`
	Travel            *TravelState     `json:"travel,omitempty"`
	Activities        []QueuedActivity `json:"activities,omitempty"`
}

// Settings are player-controlled core toggles.
type Settings struct {
	OfflineProgressionEnabled bool `json:"offline_progression_enabled"`
}

// GameState is the full persisted snapshot the scheduler and catch-up
// engine operate on.
type GameState struct {
	Pet          *pet.Pet    `json:"pet,omitempty"`
	Player       PlayerState `json:"player"`
	World        WorldState  `json:"world"`
	TickCount    uint64      `json:"tick_count"`
	LastSaveTime time.Time   `json:"last_save_time"`
	Settings     Settings    `json:"settings"`
}

// NewGameState creates an empty state at the catalog's start location,
// with offline progression on.
func NewGameState(cat *catalog.Catalog) *GameState {
	return &GameState{
		Player: PlayerState{
			Inventory:       map[string]int{},
			Skills:          map[string]engine.Skill{},
			CompletedQuests: map[string]bool{},
		},
		World:    WorldState{CurrentLocationID: cat.StartLocationID()},
		Settings: Settings{OfflineProgressionEnabled: true},
	}
}

// Clone returns a deep copy, used by catch-up replay and tests.
func (gs *GameState) Clone() *GameState {
	c := *gs
	if gs.Pet != nil {
		c.Pet = gs.Pet.Clone()
	}
	c.Player.Inventory = make(map[string]int, len(gs.Player.Inventory))
	for k, v := range gs.Player.Inventory {
		c.Player.Inventory[k] = v
	}
	c.Player.Skills = make(map[string]engine.Skill, len(gs.Player.Skills))
	for k, v := range gs.Player.Skills {
		c.Player.Skills[k] = v
	}
	c.Player.CompletedQuests = make(map[string]bool, len(gs.Player.CompletedQuests))
	for k, v := range gs.Player.CompletedQuests {
		c.Player.CompletedQuests[k] = v
	}
	if gs.World.Travel != nil {
		t := *gs.World.Travel
		c.World.Travel = &t
	}
	c.World.Activities = append([]QueuedActivity(nil), gs.World.Activities...)
	return &c
}
