// Package game composes the per-pet tick with world-level effects: daily and
// weekly resets, activity completion, quest progress, and the offline
// catch-up driver. Every operation returns a new State value; the input is
// never mutated, which is what makes replay equivalence hold.
package game

import (
	"time"

	"petden/internal/item"
	"petden/internal/loot"
	"petden/internal/pet"
	"petden/internal/quest"
)

// Skills tracks per-skill levels and progress toward the next level.
type Skills struct {
	Levels map[string]int `json:"levels"`
	XP     map[string]int `json:"xp"`
}

// Level returns the effective level of a skill (minimum 1).
func (s Skills) Level(name string) int {
	if lvl, ok := s.Levels[name]; ok && lvl > 0 {
		return lvl
	}
	return 1
}

func (s Skills) clone() Skills {
	out := Skills{
		Levels: make(map[string]int, len(s.Levels)),
		XP:     make(map[string]int, len(s.XP)),
	}
	for k, v := range s.Levels {
		out.Levels[k] = v
	}
	for k, v := range s.XP {
		out.XP[k] = v
	}
	return out
}

// Player is everything owned by the keeper rather than the pet.
type Player struct {
	Coins      int            `json:"coins"`
	Inventory  item.Inventory `json:"inventory"`
	Skills     Skills         `json:"skills"`
	Location   string         `json:"location"`
	Visited    map[string]bool `json:"visited"`
	Unlocks    map[string]bool `json:"unlocks"`
	BattleWins int            `json:"battle_wins"`
}

func (p Player) clone() Player {
	out := p
	out.Inventory = p.Inventory.Clone()
	out.Skills = p.Skills.clone()
	out.Visited = make(map[string]bool, len(p.Visited))
	for k, v := range p.Visited {
		out.Visited[k] = v
	}
	out.Unlocks = make(map[string]bool, len(p.Unlocks))
	for k, v := range p.Unlocks {
		out.Unlocks[k] = v
	}
	return out
}

// BattleSession marks an in-progress battle owned by an external resolver.
type BattleSession struct {
	OpponentID string    `json:"opponent_id"`
	StartedAt  time.Time `json:"started_at"`
}

// BattleRewards is the consumable output of external battle resolution.
type BattleRewards struct {
	Coins int            `json:"coins"`
	Items []loot.Drop    `json:"items,omitempty"`
	XP    map[string]int `json:"xp,omitempty"`
}

// ExplorationResult reports one completed foraging trip.
type ExplorationResult struct {
	LocationID  string      `json:"location_id"`
	Drops       []loot.Drop `json:"drops"`
	SkillXP     int         `json:"skill_xp"`
	CompletedAt time.Time   `json:"completed_at"`
}

// State is the root aggregate. It is replaced wholesale on every tick.
type State struct {
	Pet             *pet.Pet         `json:"pet"`
	Player          Player           `json:"player"`
	Quests          []quest.Progress `json:"quests"`
	TotalTicks      int              `json:"total_ticks"`
	LastSaveTime    time.Time        `json:"last_save_time"`
	LastDailyReset  time.Time        `json:"last_daily_reset"`
	LastWeeklyReset time.Time        `json:"last_weekly_reset"`
	IsInitialized   bool             `json:"is_initialized"`

	ActiveBattle          *BattleSession     `json:"active_battle,omitempty"`
	LastExplorationResult *ExplorationResult `json:"last_exploration_result,omitempty"`
}

// Clone returns a deep copy of the state tree.
func (s State) Clone() State {
	out := s
	if s.Pet != nil {
		p := s.Pet.Clone()
		out.Pet = &p
	}
	out.Player = s.Player.clone()
	out.Quests = quest.CloneList(s.Quests)
	if s.ActiveBattle != nil {
		b := *s.ActiveBattle
		out.ActiveBattle = &b
	}
	if s.LastExplorationResult != nil {
		r := *s.LastExplorationResult
		r.Drops = append([]loot.Drop(nil), s.LastExplorationResult.Drops...)
		out.LastExplorationResult = &r
	}
	return out
}

// CompletedQuestIDs collects ids of completed quests, for requirement checks.
func (s State) CompletedQuestIDs() map[string]bool {
	out := map[string]bool{}
	for _, p := range s.Quests {
		if p.State == quest.StateCompleted {
			out[p.QuestID] = true
		}
	}
	return out
}
