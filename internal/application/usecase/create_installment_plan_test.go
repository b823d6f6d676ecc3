package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/pkg/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateInstallmentPlan_Execute(t *testing.T) {
	clinicID := uuid.New()

	t.Run("persists the full batch with exact-cent split", func(t *testing.T) {
		repo := &mockReceivableRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateInstallmentPlanUseCase(repo, publisher, testLogger())

		patientID := uuid.New().String()
		resp, err := uc.Execute(context.Background(), clinicID, dto.CreateInstallmentPlanRequest{
			PatientID:    &patientID,
			Total:        decimal.RequireFromString("100.00"),
			Installments: 3,
			FirstDueDate: "2024-05-10",
		})

		require.NoError(t, err)
		require.Len(t, resp, 3)
		assert.Equal(t, "33.34", resp[0].Amount.StringFixed(2))
		assert.Equal(t, "33.33", resp[1].Amount.StringFixed(2))
		assert.Equal(t, "2024-05-10", resp[0].DueDate)
		assert.Equal(t, "2024-06-10", resp[1].DueDate)

		require.Len(t, repo.batches, 1)
		require.Len(t, repo.batches[0], 3)
		for _, r := range repo.batches[0] {
			assert.Equal(t, clinicID, r.ClinicID)
		}
		assert.Len(t, publisher.published, 1)
	})

	t.Run("rejects a single installment", func(t *testing.T) {
		repo := &mockReceivableRepository{}
		uc := usecase.NewCreateInstallmentPlanUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.CreateInstallmentPlanRequest{
			Total:        decimal.RequireFromString("100.00"),
			Installments: 1,
			FirstDueDate: "2024-05-10",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCount)
		assert.Empty(t, repo.batches)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		uc := usecase.NewCreateInstallmentPlanUseCase(&mockReceivableRepository{}, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.CreateInstallmentPlanRequest{
			Total:        decimal.RequireFromString("100.00"),
			Installments: 3,
			FirstDueDate: "10/05/2024",
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("succeeds even when the broker is down", func(t *testing.T) {
		repo := &mockReceivableRepository{}
		failing := &mockEventPublisher{
			publishFunc: func(context.Context, events.DomainEvent) error {
				return assert.AnError
			},
		}
		uc := usecase.NewCreateInstallmentPlanUseCase(repo, failing, testLogger())
		resp, err := uc.Execute(context.Background(), clinicID, dto.CreateInstallmentPlanRequest{
			Total:        decimal.RequireFromString("60.00"),
			Installments: 2,
			FirstDueDate: "2024-05-10",
		})
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
