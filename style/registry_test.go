package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolve(t *testing.T) {
	r := NewStyleRegistry()
	id := r.Register(NewTextStyle().WithAttr(AttrBold))
	assert.NotZero(t, id)

	ts, ok := r.Resolve(id)
	require.True(t, ok)
	assert.True(t, ts.Bold())
}

func TestResolveDefaultIDFails(t *testing.T) {
	r := NewStyleRegistry()
	_, ok := r.Resolve(0)
	assert.False(t, ok)
}

func TestDistinctIDsPerRegister(t *testing.T) {
	r := NewStyleRegistry()
	id1 := r.Register(NewTextStyle())
	id2 := r.Register(NewTextStyle())
	assert.NotEqual(t, id1, id2)
}

func TestDestroyNotifiesSubscribersAndClearsState(t *testing.T) {
	r := NewStyleRegistry()
	id := r.Register(NewTextStyle())

	notified := false
	r.OnDestroy(func() { notified = true })

	r.Destroy()
	assert.True(t, notified)
	assert.True(t, r.Destroyed())

	_, ok := r.Resolve(id)
	assert.False(t, ok)
}

func TestUnsubscribeBeforeDestroySkipsCallback(t *testing.T) {
	r := NewStyleRegistry()
	notified := false
	unsubscribe := r.OnDestroy(func() { notified = true })
	unsubscribe()

	r.Destroy()
	assert.False(t, notified)
}

func TestDestroyIsIdempotent(t *testing.T) {
	r := NewStyleRegistry()
	calls := 0
	r.OnDestroy(func() { calls++ })
	r.Destroy()
	r.Destroy()
	assert.Equal(t, 1, calls)
}
