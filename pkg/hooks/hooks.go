// Package hooks dispatches lifecycle callbacks around profile actions.
//
// The host application registers callbacks for (action, phase) pairs at
// startup; the engine runs them around create, edit, delete, and load.
// Hooks are advisory: they cannot veto an action, their return is
// ignored, and a panicking hook is logged and swallowed. An absent
// registration is a silent no-op.
package hooks

import (
	"fmt"

	"github.com/arthur-debert/envprof/pkg/logging"
)

// Action identifies the profile operation a hook brackets.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionLoad   Action = "load"
)

// Phase identifies whether a hook runs before or after the action.
type Phase string

const (
	PhasePre  Phase = "pre"
	PhasePost Phase = "post"
)

type hookKey struct {
	action Action
	phase  Phase
}

// Registry maps (action, phase) pairs to registered callbacks.
type Registry struct {
	hooks map[hookKey]func()
}

// NewRegistry returns an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[hookKey]func())}
}

// Register installs fn for the given action and phase, replacing any
// previous registration. A nil fn removes the registration.
func (r *Registry) Register(action Action, phase Phase, fn func()) {
	key := hookKey{action: action, phase: phase}
	if fn == nil {
		delete(r.hooks, key)
		return
	}
	r.hooks[key] = fn
}

// Run invokes the hook for (action, phase) if one is registered.
// Missing hooks are a no-op. A panic inside a hook is the host
// application's bug, not the engine's failure: it is logged and
// recovered so the surrounding action proceeds.
func (r *Registry) Run(action Action, phase Phase) {
	if r == nil {
		return
	}
	fn, ok := r.hooks[hookKey{action: action, phase: phase}]
	if !ok {
		return
	}

	logger := logging.GetLogger("hooks")
	logger.Debug().Str("action", string(action)).Str("phase", string(phase)).Msg("Running hook")

	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn().
				Str("action", string(action)).
				Str("phase", string(phase)).
				Str("panic", fmt.Sprint(rec)).
				Msg("Hook panicked; continuing")
		}
	}()
	fn()
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.hooks = make(map[hookKey]func())
}
