package quest

import "time"

// Progress is the stored state of one quest the player has interacted with.
// Quests without a record are in a virtual Locked/Available state.
type Progress struct {
	QuestID     string         `json:"quest_id"`
	State       State          `json:"state"`
	Objectives  map[string]int `json:"objectives"` // objective id -> count
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
}

// NewProgress creates a fresh Active record.
func NewProgress(questID string, now time.Time, expiresAt *time.Time) Progress {
	started := now
	return Progress{
		QuestID:    questID,
		State:      StateActive,
		Objectives: map[string]int{},
		StartedAt:  &started,
		ExpiresAt:  expiresAt,
	}
}

// Clone returns an independent copy.
func (p Progress) Clone() Progress {
	out := p
	out.Objectives = make(map[string]int, len(p.Objectives))
	for k, v := range p.Objectives {
		out.Objectives[k] = v
	}
	if p.StartedAt != nil {
		t := *p.StartedAt
		out.StartedAt = &t
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		out.CompletedAt = &t
	}
	if p.ExpiresAt != nil {
		t := *p.ExpiresAt
		out.ExpiresAt = &t
	}
	return out
}

// CloneList deep-copies a progress slice.
func CloneList(list []Progress) []Progress {
	out := make([]Progress, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out
}

// Find returns the progress record for a quest, if any.
func Find(list []Progress, questID string) (Progress, int, bool) {
	for i, p := range list {
		if p.QuestID == questID {
			return p, i, true
		}
	}
	return Progress{}, -1, false
}

// VirtualState derives the queryable state of a quest: the stored state when
// a record exists, otherwise Available/Locked from requirement evaluation.
func VirtualState(q Quest, list []Progress, ctx EvalContext) State {
	if p, _, ok := Find(list, q.ID); ok {
		return p.State
	}
	if RequirementsMet(q, ctx) {
		return StateAvailable
	}
	return StateLocked
}

// ObjectivesComplete reports whether every non-optional objective reached its
// target quantity.
func ObjectivesComplete(q Quest, p Progress) bool {
	for _, o := range q.RequiredObjectives() {
		if p.Objectives[o.ID] < o.Quantity {
			return false
		}
	}
	return true
}

// UpdateProgress increments matching objectives on all Active records, capped
// at each objective's target quantity. When nothing changes it returns the
// original slice and false, enabling cheap change detection upstream.
func UpdateProgress(list []Progress, reg *Registry, action ActionType, target string, amount int) ([]Progress, bool) {
	if amount <= 0 {
		amount = 1
	}

	changed := false
	var out []Progress
	for i, p := range list {
		if p.State != StateActive {
			continue
		}
		q, ok := reg.Get(p.QuestID)
		if !ok {
			continue
		}
		for _, o := range q.Objectives {
			if !o.Matches(action, target) {
				continue
			}
			current := p.Objectives[o.ID]
			if current >= o.Quantity {
				continue
			}
			next := current + amount
			if next > o.Quantity {
				next = o.Quantity
			}
			if !changed {
				out = CloneList(list)
				changed = true
			}
			out[i].Objectives[o.ID] = next
		}
	}

	if !changed {
		return list, false
	}
	return out, true
}

// ExpireTimed flips Active timed records whose deadline has passed to
// Expired. Returns the original slice when nothing expired.
func ExpireTimed(list []Progress, now time.Time) ([]Progress, bool) {
	changed := false
	var out []Progress
	for i, p := range list {
		if p.State != StateActive || p.ExpiresAt == nil || !now.After(*p.ExpiresAt) {
			continue
		}
		if !changed {
			out = CloneList(list)
			changed = true
		}
		out[i].State = StateExpired
	}
	if !changed {
		return list, false
	}
	return out, true
}

// Refresh discards every progress record of the given quest type and creates
// fresh Active records for all definitions of that type, stamped with the
// next boundary. A full replace: non-repeatable progress is untouched because
// filtering is by quest type first.
func Refresh(list []Progress, reg *Registry, qtype Type, now, expiresAt time.Time) []Progress {
	out := make([]Progress, 0, len(list))
	for _, p := range list {
		q, ok := reg.Get(p.QuestID)
		if ok && q.Type == qtype {
			continue
		}
		out = append(out, p.Clone())
	}
	for _, q := range reg.OfType(qtype) {
		exp := expiresAt
		out = append(out, NewProgress(q.ID, now, &exp))
	}
	return out
}
