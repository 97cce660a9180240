package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsAnonymousWithEmptyStore(t *testing.T) {
	session, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)

	assert.False(t, session.Authenticated())
	assert.Empty(t, session.Token())
}

func TestSessionRehydratesFromStore(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("stored-token"))

	session, err := NewSession(store)
	require.NoError(t, err)

	assert.True(t, session.Authenticated())
	assert.Equal(t, "stored-token", session.Token())
}

func TestSessionSetTokenPersists(t *testing.T) {
	store := &MemoryTokenStore{}
	session, err := NewSession(store)
	require.NoError(t, err)

	require.NoError(t, session.SetToken("t1"))
	assert.Equal(t, "t1", session.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", stored)
}

func TestSessionSetEmptyTokenClearsStore(t *testing.T) {
	store := &MemoryTokenStore{}
	session, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, session.SetToken("t1"))

	require.NoError(t, session.SetToken(""))

	assert.False(t, session.Authenticated())
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSessionLogoutIsIdempotent(t *testing.T) {
	session, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)
	require.NoError(t, session.SetToken("t1"))

	require.NoError(t, session.Logout())
	require.NoError(t, session.Logout())

	assert.False(t, session.Authenticated())
}

func TestSessionOnChangeFires(t *testing.T) {
	session, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)

	var states []bool
	session.OnChange = func(authenticated bool) {
		states = append(states, authenticated)
	}

	require.NoError(t, session.SetToken("t1"))
	require.NoError(t, session.Logout())

	assert.Equal(t, []bool{true, false}, states)
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := &FileTokenStore{Path: path}

	// Missing file means anonymous, not an error.
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("persisted"))

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStoreSurvivesNewSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := &FileTokenStore{Path: path}

	first, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, first.SetToken("survives-reload"))

	second, err := NewSession(&FileTokenStore{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "survives-reload", second.Token())
}
