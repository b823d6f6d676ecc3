package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/port"
)

func TestMarkOverdue_Execute(t *testing.T) {
	clinicA := uuid.New()
	clinicB := uuid.New()

	recvRepo := &mockReceivableRepository{
		markOverdueFunc: func(_ context.Context, today time.Time) ([]port.OverdueCount, error) {
			// The sweep runs on a date-only boundary.
			assert.Equal(t, 0, today.Hour())
			return []port.OverdueCount{
				{ClinicID: clinicA, Receivables: 3},
				{ClinicID: clinicB, Receivables: 1},
			}, nil
		},
	}
	payRepo := &mockPayableRepository{
		markOverdueFunc: func(_ context.Context, _ time.Time) ([]port.OverdueCount, error) {
			return []port.OverdueCount{{ClinicID: clinicA, Payables: 2}}, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewMarkOverdueUseCase(recvRepo, payRepo, publisher, testLogger())

	receivables, payables, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, receivables)
	assert.Equal(t, 2, payables)
	// One event per clinic that had flips.
	assert.Len(t, publisher.published, 2)
}
