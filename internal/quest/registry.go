package quest

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry is a read-only id -> quest definition lookup.
type Registry struct {
	byID map[string]Quest
}

func NewRegistry(list []Quest) *Registry {
	r := &Registry{byID: make(map[string]Quest, len(list))}
	for _, q := range list {
		r.byID[q.ID] = q
	}
	return r
}

func (r *Registry) Get(id string) (Quest, bool) {
	q, ok := r.byID[id]
	return q, ok
}

// All returns every definition, sorted by id.
func (r *Registry) All() []Quest {
	out := make([]Quest, 0, len(r.byID))
	for _, q := range r.byID {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OfType returns definitions of one type, sorted by id.
func (r *Registry) OfType(t Type) []Quest {
	out := make([]Quest, 0)
	for _, q := range r.byID {
		if q.Type == t {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadFile reads quest definitions from a YAML file.
func LoadFile(path string) ([]Quest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Quest
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}
