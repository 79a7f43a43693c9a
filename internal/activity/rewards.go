package activity

// RewardSink is the integration seam toward the inventory, skill, and
// quest subsystems. The core reports what an exploration paid out; the
// sink owns the bookkeeping.
type RewardSink interface {
	AddItem(itemID string, quantity int)
	AddSkillXP(skillID string, amount int)
	ReportExplorationObjective(activityID string)
	ReportItemObjective(itemID string, quantity int)
}

// ApplyExplorationRewards pushes a completed exploration's payout through
// the sink: skill XP, found items, and objective progress for both the
// "explore this activity" and "collect this item" objective kinds.
func ApplyExplorationRewards(sink RewardSink, outcome ExplorationOutcome) {
	for skillID, xp := range outcome.SkillXP {
		sink.AddSkillXP(skillID, xp)
	}
	for itemID, qty := range outcome.Drops {
		sink.AddItem(itemID, qty)
		sink.ReportItemObjective(itemID, qty)
	}
	sink.ReportExplorationObjective(outcome.ActivityID)
}
