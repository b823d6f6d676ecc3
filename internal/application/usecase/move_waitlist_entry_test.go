package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

func TestMoveWaitlistEntry_Execute(t *testing.T) {
	clinicID := uuid.New()
	actorID := uuid.New()

	entry, err := model.NewWaitlistEntry(clinicID, uuid.New(), "Ortodontia", nil, 5, "", time.Now().UTC())
	require.NoError(t, err)

	t.Run("moves the card and appends the audit row", func(t *testing.T) {
		moved := entry
		moved.Status = valueobject.WaitlistContacting
		repo := &mockWaitlistRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.WaitlistEntry, error) {
				return moved, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewMoveWaitlistEntryUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, actorID, dto.MoveWaitlistEntryRequest{
			EntryID:    entry.ID.String(),
			FromStatus: "NEW",
			ToStatus:   "CONTACTING",
			Note:       "ligou",
		})

		require.NoError(t, err)
		assert.Equal(t, "CONTACTING", resp.Status)
		require.Len(t, repo.events, 1)
		assert.Equal(t, valueobject.WaitlistNew, *repo.events[0].FromStatus)
		assert.Equal(t, valueobject.WaitlistContacting, repo.events[0].ToStatus)
		assert.Equal(t, "ligou", repo.events[0].Note)
		assert.Len(t, publisher.published, 1)
	})

	t.Run("stale from-status surfaces the race", func(t *testing.T) {
		repo := &mockWaitlistRepository{
			moveFunc: func(_ context.Context, _, _ uuid.UUID, _, _ valueobject.WaitlistStatus) error {
				return model.ErrConcurrentModification
			},
		}
		uc := usecase.NewMoveWaitlistEntryUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, actorID, dto.MoveWaitlistEntryRequest{
			EntryID:    entry.ID.String(),
			FromStatus: "NEW",
			ToStatus:   "SCHEDULED",
		})
		assert.ErrorIs(t, err, model.ErrConcurrentModification)
		assert.Empty(t, repo.events)
	})

	t.Run("audit log failure does not undo the move", func(t *testing.T) {
		moved := entry
		moved.Status = valueobject.WaitlistDone
		repo := &mockWaitlistRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.WaitlistEntry, error) {
				return moved, nil
			},
			appendEventFunc: func(_ context.Context, _ model.WaitlistEvent) error {
				return assert.AnError
			},
		}
		uc := usecase.NewMoveWaitlistEntryUseCase(repo, &mockEventPublisher{}, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, actorID, dto.MoveWaitlistEntryRequest{
			EntryID:    entry.ID.String(),
			FromStatus: "NEW",
			ToStatus:   "DONE",
		})
		require.NoError(t, err)
		assert.Equal(t, "DONE", resp.Status)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		uc := usecase.NewMoveWaitlistEntryUseCase(&mockWaitlistRepository{}, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, actorID, dto.MoveWaitlistEntryRequest{
			EntryID:    entry.ID.String(),
			FromStatus: "NEW",
			ToStatus:   "ARCHIVED",
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
