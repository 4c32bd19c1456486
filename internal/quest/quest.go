// Package quest implements quest definitions and the progress state machine:
// virtual locked/available states, activation, objective tracking, completion
// with atomic rewards, expiry, and daily/weekly replacement.
package quest

// Type categorizes quests by lifecycle.
type Type string

const (
	TypeStory  Type = "story"
	TypeDaily  Type = "daily"
	TypeWeekly Type = "weekly"
	TypeTimed  Type = "timed"
)

// State is a quest's lifecycle state. Locked and Available are virtual:
// derived on query for quests with no progress record yet.
type State string

const (
	StateLocked    State = "locked"
	StateAvailable State = "available"
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateExpired   State = "expired"
)

// ActionType names a player/game action that can progress objectives.
type ActionType string

const (
	ActionFeedPet          ActionType = "feed_pet"
	ActionGiveWater        ActionType = "give_water"
	ActionPlayWithPet      ActionType = "play_with_pet"
	ActionCleanPoop        ActionType = "clean_poop"
	ActionForage           ActionType = "forage"
	ActionCompleteTraining ActionType = "complete_training"
	ActionDefeatOpponent   ActionType = "defeat_opponent"
	ActionVisitLocation    ActionType = "visit_location"
	ActionAcquireItem      ActionType = "acquire_item"
)

// TargetAny matches any target in an objective.
const TargetAny = "any"

// Objective is a single goal within a quest.
type Objective struct {
	ID          string     `yaml:"id" json:"id"`
	Action      ActionType `yaml:"action" json:"action"`
	Target      string     `yaml:"target" json:"target"` // item/location id or TargetAny
	Quantity    int        `yaml:"quantity" json:"quantity"`
	Optional    bool       `yaml:"optional" json:"optional"`
	Description string     `yaml:"description" json:"description"`
}

// Matches reports whether an action/target pair progresses this objective.
func (o Objective) Matches(action ActionType, target string) bool {
	if o.Action != action {
		return false
	}
	return o.Target == TargetAny || o.Target == target
}

// RewardItem is a quantity of one item granted on completion.
type RewardItem struct {
	ItemID string `yaml:"item_id" json:"item_id"`
	Amount int    `yaml:"amount" json:"amount"`
}

// Reward is everything granted when a quest completes. The grant is atomic
// with the Completed transition.
type Reward struct {
	Coins   int            `yaml:"coins" json:"coins"`
	Items   []RewardItem   `yaml:"items" json:"items"`
	SkillXP map[string]int `yaml:"skill_xp" json:"skill_xp"`
	Unlocks []string       `yaml:"unlocks" json:"unlocks"`
}

// Quest is a static quest definition.
type Quest struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Type        Type   `yaml:"type" json:"type"`

	// Prerequisite chains quests: it must be completed before this quest
	// becomes available.
	Prerequisite string        `yaml:"prerequisite" json:"prerequisite"`
	Requirements []Requirement `yaml:"requirements" json:"requirements"`

	Objectives []Objective `yaml:"objectives" json:"objectives"`
	Reward     Reward      `yaml:"reward" json:"reward"`

	// Location restrictions; empty means anywhere.
	StartLocation  string `yaml:"start_location" json:"start_location"`
	TurnInLocation string `yaml:"turn_in_location" json:"turn_in_location"`

	// DurationTicks bounds timed quests from activation.
	DurationTicks int `yaml:"duration_ticks" json:"duration_ticks"`
}

// RequiredObjectives returns the non-optional objectives.
func (q Quest) RequiredObjectives() []Objective {
	out := make([]Objective, 0, len(q.Objectives))
	for _, o := range q.Objectives {
		if !o.Optional {
			out = append(out, o)
		}
	}
	return out
}
