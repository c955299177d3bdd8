package session

import (
	"testing"

	"skincare-assistant-be/internal/repository/memory"
	"skincare-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate(t *testing.T) {
	manager := NewManager(memory.NewSessionRepository())

	sess := manager.LoadOrCreate(7)
	require.NotNil(t, sess)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, store.StepIdle, sess.CurrentStep)
	assert.Empty(t, sess.SelectedIngredients)

	// Second lookup returns the same instance, mutations included.
	sess.CurrentStep = store.StepSelectProductType
	again := manager.LoadOrCreate(7)
	assert.Same(t, sess, again)
	assert.Equal(t, store.StepSelectProductType, again.CurrentStep)
}

func TestLoadOrCreateSeparateUsers(t *testing.T) {
	manager := NewManager(memory.NewSessionRepository())

	a := manager.LoadOrCreate(1)
	b := manager.LoadOrCreate(2)
	assert.NotSame(t, a, b)
}
