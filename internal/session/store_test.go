package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	st := NewStore(0)
	s := st.Create()

	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)

	got, ok := st.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore(0)
	s := st.Create()

	got, created := st.GetOrCreate(s.ID())
	assert.False(t, created)
	assert.Same(t, s, got)

	fresh, created := st.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", fresh.ID())

	_, created = st.GetOrCreate("")
	assert.True(t, created)
	assert.Equal(t, 3, st.Len())
}

func TestStoreDelete(t *testing.T) {
	st := NewStore(0)
	s := st.Create()
	st.Delete(s.ID())
	_, ok := st.Get(s.ID())
	assert.False(t, ok)
}

func TestStoreIdleExpiry(t *testing.T) {
	st := NewStore(50 * time.Millisecond)
	s := st.Create()

	time.Sleep(30 * time.Millisecond)
	_, ok := st.Get(s.ID())
	require.True(t, ok, "access refreshes the idle timer")

	time.Sleep(30 * time.Millisecond)
	_, ok = st.Get(s.ID())
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)
	_, ok = st.Get(s.ID())
	assert.False(t, ok)
}

func TestStorePinsPendingSession(t *testing.T) {
	st := NewStore(50 * time.Millisecond)
	s := st.Create()
	require.NoError(t, s.Begin())

	time.Sleep(120 * time.Millisecond)
	got, ok := st.Get(s.ID())
	require.True(t, ok, "pending session must not expire")
	assert.Same(t, s, got)

	// polling while pending keeps it pinned
	time.Sleep(120 * time.Millisecond)
	_, ok = st.Get(s.ID())
	require.True(t, ok)

	require.NoError(t, s.Resolve(nil))
	time.Sleep(30 * time.Millisecond)
	_, ok = st.Get(s.ID())
	require.True(t, ok, "idle timer restarts when the request finishes")

	time.Sleep(80 * time.Millisecond)
	_, ok = st.Get(s.ID())
	assert.False(t, ok)
}

func TestStoreDeletedPendingSessionStaysDeleted(t *testing.T) {
	st := NewStore(time.Minute)
	s := st.Create()
	require.NoError(t, s.Begin())

	st.Delete(s.ID())
	require.NoError(t, s.Fail("boom", nil))

	_, ok := st.Get(s.ID())
	assert.False(t, ok)
	assert.Zero(t, st.Len())
}
