package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/event"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// CreateInstallmentPlanUseCase splits a total into monthly receivables.
type CreateInstallmentPlanUseCase struct {
	receivableRepo port.ReceivableRepository
	publisher      port.EventPublisher
	logger         *slog.Logger
}

// NewCreateInstallmentPlanUseCase wires dependencies.
func NewCreateInstallmentPlanUseCase(
	receivableRepo port.ReceivableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreateInstallmentPlanUseCase {
	return &CreateInstallmentPlanUseCase{
		receivableRepo: receivableRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute generates the plan and persists the whole batch.
func (uc *CreateInstallmentPlanUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateInstallmentPlanRequest,
) ([]dto.ReceivableResponse, error) {
	now := time.Now().UTC()

	firstDue, err := parseDate(req.FirstDueDate)
	if err != nil {
		return nil, err
	}
	patientID, err := parseIDPtr(req.PatientID)
	if err != nil {
		return nil, err
	}

	plan, err := model.GenerateInstallmentPlan(req.Total, req.Installments, firstDue)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	batch := make([]model.Receivable, len(plan))
	for i, inst := range plan {
		batch[i] = model.ReceivableFromInstallment(inst, clinicID, patientID, valueobject.OriginInstallment, nil, now)
	}

	if err := uc.receivableRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	ev := event.NewInstallmentPlanCreated(clinicID, patientID, batch[0].ID, len(batch), req.Total)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.ReceivablesFromModel(batch), nil
}
