package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

func TestRenegotiatePlan_Execute(t *testing.T) {
	clinicID := uuid.New()

	t.Run("flips open items and builds plan over outstanding", func(t *testing.T) {
		open1 := openReceivable(t, clinicID, "100.00")
		open2 := openReceivable(t, clinicID, "100.00")
		open2.PaidAmount = decimal.RequireFromString("40.00")
		overdue := openReceivable(t, clinicID, "50.00")
		overdue.Status = valueobject.ReceivableStatusOverdue
		paid := openReceivable(t, clinicID, "999.00")
		paid.Status = valueobject.ReceivableStatusPaid

		repo := &mockReceivableRepository{
			listByIDsFunc: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]model.Receivable, error) {
				return []model.Receivable{open1, open2, overdue, paid}, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewRenegotiatePlanUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), clinicID, dto.RenegotiateRequest{
			ReceivableIDs:   []string{open1.ID.String(), open2.ID.String(), overdue.ID.String(), paid.ID.String()},
			NewInstallments: 3,
			FirstDueDate:    "2024-07-01",
		})

		require.NoError(t, err)
		// 100 + 60 + 50, the paid item contributes nothing.
		assert.Equal(t, "210", resp.Outstanding.String())
		assert.Equal(t, 3, resp.RenegotiatedCount)
		require.Len(t, resp.NewPlan, 3)
		assert.Equal(t, "70.00", resp.NewPlan[0].Amount.StringFixed(2))

		require.Len(t, repo.renegotiated, 1)
		assert.ElementsMatch(t, []uuid.UUID{open1.ID, open2.ID, overdue.ID}, repo.renegotiated[0])
		assert.Len(t, publisher.published, 1)
	})

	t.Run("nothing open to renegotiate", func(t *testing.T) {
		paid := openReceivable(t, clinicID, "100.00")
		paid.Status = valueobject.ReceivableStatusPaid

		repo := &mockReceivableRepository{
			listByIDsFunc: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]model.Receivable, error) {
				return []model.Receivable{paid}, nil
			},
		}
		uc := usecase.NewRenegotiatePlanUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.RenegotiateRequest{
			ReceivableIDs:   []string{paid.ID.String()},
			NewInstallments: 2,
			FirstDueDate:    "2024-07-01",
		})
		assert.ErrorIs(t, err, model.ErrNothingToRenegotiate)
		assert.Empty(t, repo.renegotiated)
	})

	t.Run("plan validation failures leave everything untouched", func(t *testing.T) {
		open := openReceivable(t, clinicID, "100.00")
		repo := &mockReceivableRepository{
			listByIDsFunc: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]model.Receivable, error) {
				return []model.Receivable{open}, nil
			},
		}
		uc := usecase.NewRenegotiatePlanUseCase(repo, &mockEventPublisher{}, testLogger())

		_, err := uc.Execute(context.Background(), clinicID, dto.RenegotiateRequest{
			ReceivableIDs:   []string{open.ID.String()},
			NewInstallments: 1,
			FirstDueDate:    "2024-07-01",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCount)
		assert.Empty(t, repo.renegotiated)
	})
}
