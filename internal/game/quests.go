package game

import (
	"fmt"
	"time"

	"petden/internal/clock"
	"petden/internal/quest"
)

// StartQuest activates an available non-timed quest. Timed quests go through
// StartTimedQuest so their deadline is stamped.
func (e Engine) StartQuest(s State, questID string, now time.Time) ActionResult {
	q, known := e.Quests.Get(questID)
	if !known {
		return fail(s, fmt.Sprintf("unknown quest %q", questID))
	}
	if q.Type == quest.TypeTimed {
		return fail(s, q.Title+" is a timed quest")
	}
	return e.startQuest(s, q, now, nil)
}

// StartTimedQuest activates an available timed quest, stamping its expiry
// from the quest's duration.
func (e Engine) StartTimedQuest(s State, questID string, now time.Time) ActionResult {
	q, known := e.Quests.Get(questID)
	if !known {
		return fail(s, fmt.Sprintf("unknown quest %q", questID))
	}
	if q.Type != quest.TypeTimed {
		return fail(s, q.Title+" is not a timed quest")
	}
	expires := now.Add(time.Duration(q.DurationTicks) * clock.TickDuration)
	return e.startQuest(s, q, now, &expires)
}

func (e Engine) startQuest(s State, q quest.Quest, now time.Time, expiresAt *time.Time) ActionResult {
	if q.StartLocation != "" && s.Player.Location != q.StartLocation {
		return fail(s, q.Title+" must be started at "+q.StartLocation)
	}
	switch quest.VirtualState(q, s.Quests, e.evalContext(s)) {
	case quest.StateAvailable:
	case quest.StateLocked:
		return fail(s, q.Title+" is locked")
	default:
		return fail(s, q.Title+" was already started")
	}

	next := s.Clone()
	next.Quests = append(next.Quests, quest.NewProgress(q.ID, now, expiresAt))
	return succeed(next, "started "+q.Title)
}

// CompleteQuest turns in an active quest with all objectives done. The reward
// grant and the Completed transition are a single atomic state change.
func (e Engine) CompleteQuest(s State, questID string, now time.Time) ActionResult {
	q, known := e.Quests.Get(questID)
	if !known {
		return fail(s, fmt.Sprintf("unknown quest %q", questID))
	}
	p, idx, found := quest.Find(s.Quests, questID)
	if !found || p.State != quest.StateActive {
		return fail(s, q.Title+" is not active")
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return fail(s, q.Title+" has expired")
	}
	if !quest.ObjectivesComplete(q, p) {
		return fail(s, q.Title+" still has objectives left")
	}
	if q.TurnInLocation != "" && s.Player.Location != q.TurnInLocation {
		return fail(s, q.Title+" must be turned in at "+q.TurnInLocation)
	}

	next := s.Clone()

	next.Player.Coins += q.Reward.Coins
	for _, r := range q.Reward.Items {
		if _, ok := e.Items.Get(r.ItemID); !ok {
			e.logf("dropping unknown reward item %q from quest %q", r.ItemID, q.ID)
			continue
		}
		next.Player.Inventory.Add(r.ItemID, r.Amount)
	}
	for skill, xp := range q.Reward.SkillXP {
		next.Player.Skills = grantSkillXP(next.Player.Skills, skill, xp, e.Balance)
	}
	for _, u := range q.Reward.Unlocks {
		next.Player.Unlocks[u] = true
	}

	completed := now
	next.Quests[idx].State = quest.StateCompleted
	next.Quests[idx].CompletedAt = &completed
	return succeed(next, "completed "+q.Title)
}

// AvailableQuests lists the quest definitions the player could start right
// now, in id order.
func (e Engine) AvailableQuests(s State) []quest.Quest {
	ctx := e.evalContext(s)
	var out []quest.Quest
	for _, q := range e.Quests.All() {
		if quest.VirtualState(q, s.Quests, ctx) == quest.StateAvailable {
			out = append(out, q)
		}
	}
	return out
}
