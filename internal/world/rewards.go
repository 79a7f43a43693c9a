package world

import (
	"fmt"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
)

// FallbackCompensationGold is paid when a malformed reward has no item
// value to scale against.
const FallbackCompensationGold = 10

// ApplyReward applies one reward entry to the game state. Malformed
// entries (missing amount, missing or unknown item id, unknown kind)
// never abort processing: each converts to a deterministic gold
// compensation recorded as a reward_substituted action so the
// substitution is observable.
func ApplyReward(gs *GameState, cat *catalog.Catalog, spec catalog.RewardSpec) []engine.Action {
	switch spec.Kind {
	case "gold":
		if spec.Amount <= 0 {
			return compensate(gs, cat, spec, "gold reward without amount")
		}
		gs.Player.Gold += uint64(spec.Amount)
		return nil

	case "item":
		if spec.ItemID == "" {
			return compensate(gs, cat, spec, "item reward without item id")
		}
		if _, ok := cat.Items[spec.ItemID]; !ok {
			return compensate(gs, cat, spec, fmt.Sprintf("unknown item %q", spec.ItemID))
		}
		qty := spec.Amount
		if qty <= 0 {
			qty = 1
		}
		gs.Player.Inventory[spec.ItemID] += qty
		return nil

	case "experience":
		if spec.SkillID == "" || spec.Amount <= 0 {
			return compensate(gs, cat, spec, "experience reward without skill or amount")
		}
		gs.Player.AddSkillXP(spec.SkillID, spec.Amount)
		return nil
	}

	return compensate(gs, cat, spec, fmt.Sprintf("unknown reward kind %q", spec.Kind))
}

// compensate pays gold in place of an unapplicable reward: the item's
// value times the quantity when the item is known, a flat fallback
// otherwise.
func compensate(gs *GameState, cat *catalog.Catalog, spec catalog.RewardSpec, reason string) []engine.Action {
	gold := FallbackCompensationGold
	if item, ok := cat.Items[spec.ItemID]; ok {
		qty := spec.Amount
		if qty <= 0 {
			qty = 1
		}
		gold = item.Value * qty
	}
	gs.Player.Gold += uint64(gold)
	return []engine.Action{{
		Kind:   engine.ActionRewardSubstituted,
		Detail: fmt.Sprintf("%s: compensated %d gold", reason, gold),
	}}
}

// QuestReporter is the hook toward the external quest subsystem.
type QuestReporter interface {
	ExplorationCompleted(activityID string)
	ItemCollected(itemID string, quantity int)
}

// RewardSink folds exploration payouts into the game state and forwards
// objective progress to an optional quest reporter. Implements
// activity.RewardSink.
type RewardSink struct {
	State  *GameState
	Quests QuestReporter
}

func (s RewardSink) AddItem(itemID string, quantity int) {
	s.State.Player.Inventory[itemID] += quantity
}

func (s RewardSink) AddSkillXP(skillID string, amount int) {
	s.State.Player.AddSkillXP(skillID, amount)
}

func (s RewardSink) ReportExplorationObjective(activityID string) {
	if s.Quests != nil {
		s.Quests.ExplorationCompleted(activityID)
	}
}

func (s RewardSink) ReportItemObjective(itemID string, quantity int) {
	if s.Quests != nil {
		s.Quests.ItemCollected(itemID, quantity)
	}
}
