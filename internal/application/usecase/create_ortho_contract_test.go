package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

func TestCreateOrthoContract_Execute(t *testing.T) {
	clinicID := uuid.New()

	t.Run("persists the contract and its full batch", func(t *testing.T) {
		repo := &mockContractRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateOrthoContractUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, dto.CreateOrthoContractRequest{
			PatientID:     uuid.New().String(),
			MonthlyAmount: decimal.RequireFromString("200.00"),
			TotalMonths:   24,
			DueDay:        10,
			StartDate:     "2024-01-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "4800.00", resp.TotalValue.StringFixed(2))

		require.Len(t, repo.createdBatches, 1)
		batch := repo.createdBatches[0]
		require.Len(t, batch, 24)
		assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), batch[0].DueDate)
		assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), batch[23].DueDate)
		for _, r := range batch {
			assert.Equal(t, valueobject.OriginOrthoContract, r.OriginType)
			require.NotNil(t, r.OriginID)
			assert.Equal(t, repo.createdContracts[0].ID, *r.OriginID)
		}
		assert.Len(t, publisher.published, 1)
	})

	t.Run("rejects an out-of-range due day", func(t *testing.T) {
		repo := &mockContractRepository{}
		uc := usecase.NewCreateOrthoContractUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.CreateOrthoContractRequest{
			PatientID:     uuid.New().String(),
			MonthlyAmount: decimal.RequireFromString("200.00"),
			TotalMonths:   24,
			DueDay:        31,
			StartDate:     "2024-01-15",
		})
		assert.ErrorIs(t, err, model.ErrInvalidDueDay)
		assert.Empty(t, repo.createdContracts)
	})
}

func TestCancelOrthoContract_Execute(t *testing.T) {
	clinicID := uuid.New()

	active, err := model.NewOrthoContract(
		clinicID, uuid.New(), nil, nil,
		decimal.RequireFromString("200.00"), 24, 10,
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		"", time.Now().UTC(),
	)
	require.NoError(t, err)

	t.Run("cancels and reports closed receivables", func(t *testing.T) {
		repo := &mockContractRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.OrthoContract, error) {
				return active, nil
			},
			cancelFunc: func(_ context.Context, c model.OrthoContract) (int, error) {
				assert.True(t, c.Status.Equal(valueobject.OrthoContractStatusCancelled))
				return 20, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCancelOrthoContractUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, active.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Len(t, publisher.published, 1)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		cancelled := active
		cancelled.Status = valueobject.OrthoContractStatusCancelled
		repo := &mockContractRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.OrthoContract, error) {
				return cancelled, nil
			},
		}
		uc := usecase.NewCancelOrthoContractUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, cancelled.ID)
		assert.ErrorIs(t, err, model.ErrConcurrentModification)
	})
}
