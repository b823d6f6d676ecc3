package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/domain/event"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
)

// MarkOverdueUseCase is the nightly sweep that flips open items whose due
// date has passed to overdue. It runs across all clinics.
type MarkOverdueUseCase struct {
	receivableRepo port.ReceivableRepository
	payableRepo    port.PayableRepository
	publisher      port.EventPublisher
	logger         *slog.Logger
}

// NewMarkOverdueUseCase wires dependencies.
func NewMarkOverdueUseCase(
	receivableRepo port.ReceivableRepository,
	payableRepo port.PayableRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *MarkOverdueUseCase {
	return &MarkOverdueUseCase{
		receivableRepo: receivableRepo,
		payableRepo:    payableRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute flips items due strictly before today and reports totals.
func (uc *MarkOverdueUseCase) Execute(ctx context.Context) (receivables, payables int, err error) {
	today := model.DateOnly(time.Now().UTC())

	recvCounts, err := uc.receivableRepo.MarkOverdue(ctx, today)
	if err != nil {
		return 0, 0, fmt.Errorf("mark receivables overdue: %w", err)
	}
	payCounts, err := uc.payableRepo.MarkOverdue(ctx, today)
	if err != nil {
		return 0, 0, fmt.Errorf("mark payables overdue: %w", err)
	}

	perClinic := map[uuid.UUID]*port.OverdueCount{}
	for _, c := range recvCounts {
		count := c
		perClinic[c.ClinicID] = &count
		receivables += c.Receivables
	}
	for _, c := range payCounts {
		if agg, ok := perClinic[c.ClinicID]; ok {
			agg.Payables += c.Payables
		} else {
			count := c
			perClinic[c.ClinicID] = &count
		}
		payables += c.Payables
	}

	for clinicID, c := range perClinic {
		ev := event.NewItemsMarkedOverdue(clinicID, c.Receivables, c.Payables)
		if err := uc.publisher.Publish(ctx, ev); err != nil {
			uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
		}
	}

	uc.logger.Info("overdue sweep finished",
		"receivables", receivables,
		"payables", payables,
		"clinics", len(perClinic),
	)
	return receivables, payables, nil
}
