package engine

import (
	"github.com/talgya/mini-pet/internal/pet"
)

// ActionKind enumerates the discrete notifications a tick can emit.
type ActionKind uint8

const (
	ActionPetDied           ActionKind = iota // care life bottomed out
	ActionPetGrew                             // main stage transition
	ActionPetPooped                           // waste produced
	ActionTrainingCompleted                   // session finished and paid out
	ActionExplorationCompleted                // exploration resolved drops and XP
	ActionTravelCompleted                     // world travel arrived
	ActionActivityCompleted                   // queued world activity finished
	ActionRewardSubstituted                   // malformed reward converted to gold
)

func (k ActionKind) String() string {
	switch k {
	case ActionPetDied:
		return "pet_died"
	case ActionPetGrew:
		return "pet_grew"
	case ActionPetPooped:
		return "pet_pooped"
	case ActionTrainingCompleted:
		return "training_completed"
	case ActionExplorationCompleted:
		return "exploration_completed"
	case ActionTravelCompleted:
		return "travel_completed"
	case ActionActivityCompleted:
		return "activity_completed"
	case ActionRewardSubstituted:
		return "reward_substituted"
	}
	return "unknown"
}

// Action is one typed notification emitted by a tick.
type Action struct {
	Kind          ActionKind `json:"kind"`
	Detail        string     `json:"detail,omitempty"`
	PreviousStage pet.Stage  `json:"previous_stage,omitempty"`
	NewStage      pet.Stage  `json:"new_stage,omitempty"`
}
