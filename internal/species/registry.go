package species

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry is an explicitly-constructed read-only species lookup, injected
// into the engine instead of living as module state.
type Registry struct {
	byID map[string]Species
}

func NewRegistry(list []Species) *Registry {
	r := &Registry{byID: make(map[string]Species, len(list))}
	for _, s := range list {
		r.byID[s.ID] = s
	}
	return r
}

// Get returns the species definition, if known.
func (r *Registry) Get(id string) (Species, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// IDs returns all species ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads species definitions from a YAML file.
func LoadFile(path string) ([]Species, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Species
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("parse species file: %w", err)
	}
	return list, nil
}
