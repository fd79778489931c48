package core

import "fmt"

// Registry assigns each valve name a dense integer identity on first sight.
// A Registry is owned by exactly one Graph; it is not safe for concurrent
// mutation, which is fine because interning only happens during NewGraph.
type Registry struct {
	ids   map[string]int
	names []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Intern returns the ID of name, allocating the next free ID if the name is
// new. IDs are handed out as 0,1,2,… in first-seen order.
// Complexity: O(1) amortized.
func (r *Registry) Intern(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)

	return id
}

// Lookup returns the ID of an already interned name.
func (r *Registry) Lookup(name string) (int, bool) {
	id, ok := r.ids[name]

	return id, ok
}

// NameOf is the inverse of Intern. It fails with ErrUnknownID for IDs the
// registry never handed out.
func (r *Registry) NameOf(id int) (string, error) {
	if id < 0 || id >= len(r.names) {
		return "", fmt.Errorf("NameOf(%d): %w", id, ErrUnknownID)
	}

	return r.names[id], nil
}

// Len reports how many names have been interned.
func (r *Registry) Len() int { return len(r.names) }
