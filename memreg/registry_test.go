package memreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := New()
	id, err := r.Register([]byte("hello"), true)
	require.NoError(t, err)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	owned, err := r.Owned(id)
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestUnknownID(t *testing.T) {
	r := New()
	_, err := r.Get(42)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestReplaceDropsOldOwnedContents(t *testing.T) {
	r := New()
	id, err := r.Register([]byte("old"), true)
	require.NoError(t, err)

	require.NoError(t, r.Replace(id, []byte("new")))
	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestRegistryFull(t *testing.T) {
	r := New()
	for i := 0; i < MaxEntries; i++ {
		_, err := r.Register([]byte{byte(i)}, false)
		require.NoError(t, err)
	}
	_, err := r.Register([]byte("overflow"), false)
	assert.ErrorIs(t, err, ErrFull)
}

func TestDestroyClearsRegistry(t *testing.T) {
	r := New()
	id, _ := r.Register([]byte("x"), true)
	r.Destroy()
	assert.Equal(t, 0, r.Len())
	_, err := r.Get(id)
	assert.ErrorIs(t, err, ErrUnknownID)
}
