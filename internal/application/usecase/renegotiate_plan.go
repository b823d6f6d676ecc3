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

// RenegotiatePlanUseCase replaces open installments with a fresh plan
// over their outstanding balance. The flip and the new batch commit in
// one database transaction.
type RenegotiatePlanUseCase struct {
	receivableRepo port.ReceivableRepository
	publisher      port.EventPublisher
	logger         *slog.Logger
}

// NewRenegotiatePlanUseCase wires dependencies.
func NewRenegotiatePlanUseCase(
	receivableRepo port.ReceivableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RenegotiatePlanUseCase {
	return &RenegotiatePlanUseCase{
		receivableRepo: receivableRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute renegotiates the referenced receivables. Items that are paid or
// already renegotiated are silently excluded; if nothing open remains the
// operation fails with model.ErrNothingToRenegotiate.
func (uc *RenegotiatePlanUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.RenegotiateRequest,
) (dto.RenegotiateResponse, error) {
	now := time.Now().UTC()

	firstDue, err := parseDate(req.FirstDueDate)
	if err != nil {
		return dto.RenegotiateResponse{}, err
	}
	ids := make([]uuid.UUID, 0, len(req.ReceivableIDs))
	for _, raw := range req.ReceivableIDs {
		id, err := parseID(raw)
		if err != nil {
			return dto.RenegotiateResponse{}, err
		}
		ids = append(ids, id)
	}

	existing, err := uc.receivableRepo.ListByIDs(ctx, clinicID, ids)
	if err != nil {
		return dto.RenegotiateResponse{}, fmt.Errorf("load receivables: %w", err)
	}

	var (
		open      []model.Receivable
		patientID *uuid.UUID
	)
	for _, r := range existing {
		if !r.Status.IsOpen() {
			continue
		}
		open = append(open, r)
		if patientID == nil {
			patientID = r.PatientID
		}
	}
	if len(open) == 0 {
		return dto.RenegotiateResponse{}, model.ErrNothingToRenegotiate
	}

	outstanding := model.OutstandingBalance(open)
	plan, err := model.GenerateRenegotiationPlan(outstanding, req.NewInstallments, model.DateOnly(firstDue))
	if err != nil {
		return dto.RenegotiateResponse{}, fmt.Errorf("generate plan: %w", err)
	}

	replacements := make([]model.Receivable, len(plan))
	for i, inst := range plan {
		replacements[i] = model.ReceivableFromInstallment(inst, clinicID, patientID, valueobject.OriginInstallment, nil, now)
	}

	openIDs := make([]uuid.UUID, len(open))
	for i, r := range open {
		openIDs[i] = r.ID
	}
	if err := uc.receivableRepo.Renegotiate(ctx, clinicID, openIDs, replacements); err != nil {
		return dto.RenegotiateResponse{}, fmt.Errorf("persist renegotiation: %w", err)
	}

	ev := event.NewPlanRenegotiated(clinicID, replacements[0].ID, len(open), len(replacements), outstanding)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.RenegotiateResponse{
		RenegotiatedCount: len(open),
		Outstanding:       outstanding,
		NewPlan:           dto.ReceivablesFromModel(replacements),
	}, nil
}
