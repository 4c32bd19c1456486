package save

import (
	"encoding/json"
	"sync"

	"petden/internal/game"
)

// MemoryRepo keeps the save in memory, round-tripped through JSON so it
// behaves exactly like a persistent repo. Useful for tests and demo runs.
type MemoryRepo struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Load() (game.State, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == nil {
		return game.State{}, false, nil
	}
	var s game.State
	if err := json.Unmarshal(r.payload, &s); err != nil {
		return game.State{}, false, err
	}
	return s, true, nil
}

func (r *MemoryRepo) Save(s game.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.payload = b
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepo) Close() error { return nil }
