package memory

import (
	"testing"

	"skincare-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get(42)
	assert.False(t, found)

	session := store.NewSession(42)
	repo.Save(session)

	got, found := repo.Get(42)
	require.True(t, found)
	assert.Same(t, session, got, "the store must return the identical instance")

	// Mutations through one handle are visible on the next lookup.
	got.CurrentStep = store.StepCompatibilityInput
	again, _ := repo.Get(42)
	assert.Equal(t, store.StepCompatibilityInput, again.CurrentStep)

	repo.Delete(42)
	_, found = repo.Get(42)
	assert.False(t, found)
}

func TestSessionRepositoryIsolatesUsers(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(store.NewSession(1))
	repo.Save(store.NewSession(2))

	a, _ := repo.Get(1)
	b, _ := repo.Get(2)
	assert.Equal(t, int64(1), a.UserID)
	assert.Equal(t, int64(2), b.UserID)
}
