package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/domain/valueobject"
)

func TestNewWaitlistEntry(t *testing.T) {
	entry, err := NewWaitlistEntry(uuid.New(), uuid.New(), " Ortodontia ", nil, 5, "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, valueobject.WaitlistNew, entry.Status)
	assert.Equal(t, "Ortodontia", entry.Specialty)
	assert.Equal(t, 5, entry.Priority)
}

func TestNewWaitlistEntry_PriorityBounds(t *testing.T) {
	for _, p := range []int{-1, 11} {
		_, err := NewWaitlistEntry(uuid.New(), uuid.New(), "Clínico", nil, p, "", time.Now())
		assert.ErrorIs(t, err, ErrInvalidPriority, "priority %d", p)
	}
	for _, p := range []int{0, 10} {
		_, err := NewWaitlistEntry(uuid.New(), uuid.New(), "Clínico", nil, p, "", time.Now())
		assert.NoError(t, err, "priority %d", p)
	}
}

func TestWaitlistEntry_MoveProducesEvent(t *testing.T) {
	entry, err := NewWaitlistEntry(uuid.New(), uuid.New(), "Ortodontia", nil, 3, "", time.Now())
	require.NoError(t, err)

	actor := uuid.New()
	moved, event := entry.Move(valueobject.WaitlistContacting, &actor, "ligou 2x", time.Now())

	assert.Equal(t, valueobject.WaitlistContacting, moved.Status)
	assert.Equal(t, entry.ID, event.WaitlistEntryID)
	assert.Equal(t, entry.ClinicID, event.ClinicID)
	require.NotNil(t, event.FromStatus)
	assert.Equal(t, valueobject.WaitlistNew, *event.FromStatus)
	assert.Equal(t, valueobject.WaitlistContacting, event.ToStatus)
	assert.Equal(t, &actor, event.ActorUserID)
	assert.Equal(t, "ligou 2x", event.Note)
}
