package keymap

import "slices"

// Resolver maps key strings to actions, per context.
type Resolver struct {
	bindings map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string          // action -> keys (for help)
}

// NewResolver creates a resolver from bindings. When a key is bound twice in
// the same context the first binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		ctx := r.bindings[b.Context]
		if ctx == nil {
			ctx = make(map[string]Action)
			r.bindings[b.Context] = ctx
		}
		for _, key := range b.Keys {
			if _, taken := ctx[key]; !taken {
				ctx[key] = b.Action
			}
			if !slices.Contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action bound to key in context, or "" when unbound.
func (r *Resolver) Resolve(context, key string) Action {
	return r.bindings[context][key]
}

// ResolveWithGlobal looks key up in context first, then in the global context.
func (r *Resolver) ResolveWithGlobal(context, key string) Action {
	if a := r.Resolve(context, key); a != "" {
		return a
	}
	return r.Resolve(ContextGlobal, key)
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
