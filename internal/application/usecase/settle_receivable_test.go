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

func openReceivable(t *testing.T, clinicID uuid.UUID, amount string) model.Receivable {
	t.Helper()
	patientID := uuid.New()
	r, err := model.NewReceivable(
		clinicID, &patientID, valueobject.OriginManual,
		decimal.RequireFromString(amount),
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		"Parcela 1/3", time.Now().UTC(),
	)
	require.NoError(t, err)
	return r
}

func TestSettleReceivable_Execute(t *testing.T) {
	clinicID := uuid.New()

	t.Run("full settlement records a matching IN transaction", func(t *testing.T) {
		receivable := openReceivable(t, clinicID, "150.00")
		repo := &mockReceivableRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.Receivable, error) {
				return receivable, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSettleReceivableUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, dto.SettleReceivableRequest{
			ReceivableID:  receivable.ID.String(),
			Amount:        decimal.RequireFromString("150.00"),
			PaymentMethod: "pix",
		})

		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Receivable.Status)
		assert.Equal(t, "IN", resp.Transaction.Type)
		assert.True(t, decimal.RequireFromString("150.00").Equal(resp.Transaction.Amount))

		require.Len(t, repo.settled, 1)
		require.Len(t, repo.settledTxs, 1)
		assert.Equal(t, clinicID, repo.settledTxs[0].ClinicID)
		assert.Len(t, publisher.published, 1)
	})

	t.Run("zero amount pays the outstanding balance", func(t *testing.T) {
		receivable := openReceivable(t, clinicID, "150.00")
		receivable.PaidAmount = decimal.RequireFromString("50.00")
		repo := &mockReceivableRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.Receivable, error) {
				return receivable, nil
			},
		}
		uc := usecase.NewSettleReceivableUseCase(repo, &mockEventPublisher{}, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, dto.SettleReceivableRequest{
			ReceivableID: receivable.ID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Receivable.Status)
		assert.True(t, decimal.RequireFromString("100.00").Equal(resp.Transaction.Amount))
	})

	t.Run("settling a paid receivable reports a concurrent modification", func(t *testing.T) {
		receivable := openReceivable(t, clinicID, "150.00")
		receivable.Status = valueobject.ReceivableStatusPaid
		repo := &mockReceivableRepository{
			getByIDFunc: func(_ context.Context, _, _ uuid.UUID) (model.Receivable, error) {
				return receivable, nil
			},
		}
		uc := usecase.NewSettleReceivableUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.SettleReceivableRequest{
			ReceivableID: receivable.ID.String(),
			Amount:       decimal.RequireFromString("10.00"),
		})
		assert.ErrorIs(t, err, model.ErrConcurrentModification)
		assert.Empty(t, repo.settled)
	})

	t.Run("unknown receivable", func(t *testing.T) {
		uc := usecase.NewSettleReceivableUseCase(&mockReceivableRepository{}, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.SettleReceivableRequest{
			ReceivableID: uuid.New().String(),
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
