package runtime

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
	"github.com/skald-lang/skald/object"
)

func noop(stack *object.Stack, count int) error {
	for i := 0; i < count; i++ {
		if _, err := stack.Pop(); err != nil {
			return err
		}
	}
	stack.PushUnit()
	return nil
}

func TestModuleRegistration(t *testing.T) {
	m := NewModule()
	require.NoError(t, m.Function("alpha", noop))
	require.NoError(t, m.Function("beta", noop))
	require.Equal(t, 2, m.Len())
}

func TestModuleRejectsInvalidNames(t *testing.T) {
	m := NewModule()

	err := m.Function("", noop)
	var ctxErr *errz.ContextError
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidName, ctxErr.Kind)

	err = m.Function("bad\xffname", noop)
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidName, ctxErr.Kind)

	err = m.Function("fine", nil)
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidContext, ctxErr.Kind)

	require.Equal(t, 0, m.Len())
}

func TestInstallFreezesModule(t *testing.T) {
	m := NewModule()
	require.NoError(t, m.Function("alpha", noop))

	c := NewContext()
	require.NoError(t, c.Install(m))

	err := m.Function("beta", noop)
	var ctxErr *errz.ContextError
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidContext, ctxErr.Kind)
}

func TestInstallReportsEveryCollision(t *testing.T) {
	first := NewModule()
	require.NoError(t, first.Function("alpha", noop))
	require.NoError(t, first.Function("beta", noop))

	second := NewModule()
	require.NoError(t, second.Function("alpha", noop))
	require.NoError(t, second.Function("beta", noop))
	require.NoError(t, second.Function("gamma", noop))

	c := NewContext()
	require.NoError(t, c.Install(first))

	err := c.Install(second)
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)

	// Non-colliding functions from the same module are still installed.
	rt, rtErr := c.Runtime()
	require.NoError(t, rtErr)
	_, ok := rt.Lookup(hash.OfName("gamma"))
	require.True(t, ok)
	require.Equal(t, 3, rt.Len())
}

func TestInstallNilModule(t *testing.T) {
	c := NewContext()
	err := c.Install(nil)
	var ctxErr *errz.ContextError
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidContext, ctxErr.Kind)
}

func TestZeroValueContextIsInvalid(t *testing.T) {
	var c Context
	err := c.Install(NewModule())
	var ctxErr *errz.ContextError
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, errz.ErrInvalidContext, ctxErr.Kind)

	_, err = c.Runtime()
	require.ErrorAs(t, err, &ctxErr)
}

func TestRuntimeSnapshotIsolation(t *testing.T) {
	m := NewModule()
	require.NoError(t, m.Function("alpha", noop))

	c := NewContext()
	require.NoError(t, c.Install(m))
	rt, err := c.Runtime()
	require.NoError(t, err)
	require.Equal(t, 1, rt.Len())

	// Later installs do not leak into the snapshot.
	later := NewModule()
	require.NoError(t, later.Function("beta", noop))
	require.NoError(t, c.Install(later))
	require.Equal(t, 1, rt.Len())
	_, ok := rt.Lookup(hash.OfName("beta"))
	require.False(t, ok)
}

func TestRuntimeLookupAndName(t *testing.T) {
	m := NewModule()
	require.NoError(t, m.Function("alpha", noop))
	c := NewContext()
	require.NoError(t, c.Install(m))
	rt, err := c.Runtime()
	require.NoError(t, err)

	h := hash.OfName("alpha")
	fn, ok := rt.Lookup(h)
	require.True(t, ok)
	require.NotNil(t, fn)

	name, ok := rt.Name(h)
	require.True(t, ok)
	require.Equal(t, "alpha", name)

	_, ok = rt.Lookup(hash.OfName("missing"))
	require.False(t, ok)
}
