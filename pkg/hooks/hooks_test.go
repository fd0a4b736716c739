// pkg/hooks/hooks_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test hook registration, dispatch, and panic isolation

package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRegisteredHook(t *testing.T) {
	r := NewRegistry()
	ran := 0
	r.Register(ActionCreate, PhasePre, func() { ran++ })

	r.Run(ActionCreate, PhasePre)
	r.Run(ActionCreate, PhasePre)

	assert.Equal(t, 2, ran)
}

func TestRunMissingHookIsNoOp(t *testing.T) {
	r := NewRegistry()

	assert.NotPanics(t, func() {
		r.Run(ActionLoad, PhasePost)
	})
}

func TestRunOnNilRegistry(t *testing.T) {
	var r *Registry

	assert.NotPanics(t, func() {
		r.Run(ActionDelete, PhasePre)
	})
}

func TestPhasesAreIndependent(t *testing.T) {
	r := NewRegistry()
	var order []string
	r.Register(ActionLoad, PhasePre, func() { order = append(order, "pre") })
	r.Register(ActionLoad, PhasePost, func() { order = append(order, "post") })

	r.Run(ActionLoad, PhasePre)
	r.Run(ActionLoad, PhasePost)
	r.Run(ActionEdit, PhasePre) // unregistered action

	assert.Equal(t, []string{"pre", "post"}, order)
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	var got string
	r.Register(ActionEdit, PhasePre, func() { got = "first" })
	r.Register(ActionEdit, PhasePre, func() { got = "second" })

	r.Run(ActionEdit, PhasePre)

	assert.Equal(t, "second", got)
}

func TestRegisterNilRemoves(t *testing.T) {
	r := NewRegistry()
	ran := false
	r.Register(ActionDelete, PhasePost, func() { ran = true })
	r.Register(ActionDelete, PhasePost, nil)

	r.Run(ActionDelete, PhasePost)

	assert.False(t, ran)
}

func TestPanickingHookIsRecovered(t *testing.T) {
	r := NewRegistry()
	r.Register(ActionCreate, PhasePost, func() { panic("host bug") })

	assert.NotPanics(t, func() {
		r.Run(ActionCreate, PhasePost)
	})
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	ran := false
	r.Register(ActionCreate, PhasePre, func() { ran = true })
	r.Clear()

	r.Run(ActionCreate, PhasePre)

	assert.False(t, ran)
}
