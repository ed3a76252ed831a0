package relay

// Registry is an ordered collection of Tools with name-keyed lookup.
// It is built once before dispatch begins and is read-only afterwards;
// methods are not safe for concurrent mutation.
type Registry struct {
	ordered []*Tool
	byName  map[string]*Tool
}

// NewRegistry creates a Registry containing the given tools, registered in
// order.
func NewRegistry(tools ...*Tool) *Registry {
	r := &Registry{byName: make(map[string]*Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register inserts a tool keyed by its name. Registration is last-write-wins:
// a tool with an already-registered name silently replaces the earlier entry
// in place, so the catalog keeps one entry per name.
func (r *Registry) Register(t *Tool) {
	if t == nil {
		return
	}
	if _, ok := r.byName[t.Name]; ok {
		for i, existing := range r.ordered {
			if existing.Name == t.Name {
				r.ordered[i] = t
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, t)
	}
	r.byName[t.Name] = t
}

// Lookup returns the tool registered under name, or false when absent.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Tools returns the registered tools in registration order. The returned
// slice must not be modified.
func (r *Registry) Tools() []*Tool {
	return r.ordered
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.ordered)
}
