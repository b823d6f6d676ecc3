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

// CreateOrthoContractUseCase opens a contract and materializes its full
// receivable batch in one database transaction.
type CreateOrthoContractUseCase struct {
	contractRepo port.OrthoContractRepository
	publisher    port.EventPublisher
	logger       *slog.Logger
}

// NewCreateOrthoContractUseCase wires dependencies.
func NewCreateOrthoContractUseCase(
	contractRepo port.OrthoContractRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreateOrthoContractUseCase {
	return &CreateOrthoContractUseCase{
		contractRepo: contractRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute validates the contract, renders its schedule and persists both.
func (uc *CreateOrthoContractUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateOrthoContractRequest,
) (dto.OrthoContractResponse, error) {
	now := time.Now().UTC()

	patientID, err := parseID(req.PatientID)
	if err != nil {
		return dto.OrthoContractResponse{}, err
	}
	professionalID, err := parseIDPtr(req.ProfessionalID)
	if err != nil {
		return dto.OrthoContractResponse{}, err
	}
	budgetID, err := parseIDPtr(req.BudgetID)
	if err != nil {
		return dto.OrthoContractResponse{}, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return dto.OrthoContractResponse{}, err
	}

	contract, err := model.NewOrthoContract(
		clinicID, patientID, professionalID, budgetID,
		req.MonthlyAmount, req.TotalMonths, req.DueDay,
		startDate, req.Notes, now,
	)
	if err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("build contract: %w", err)
	}

	schedule, err := contract.Schedule()
	if err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	batch := make([]model.Receivable, len(schedule))
	for i, inst := range schedule {
		batch[i] = model.ReceivableFromInstallment(
			inst, clinicID, &contract.PatientID,
			valueobject.OriginOrthoContract, &contract.ID, now,
		)
	}

	if err := uc.contractRepo.CreateWithSchedule(ctx, contract, batch); err != nil {
		return dto.OrthoContractResponse{}, fmt.Errorf("persist contract: %w", err)
	}

	ev := event.NewOrthoContractCreated(clinicID, contract.ID, contract.PatientID, contract.TotalMonths, contract.MonthlyAmount)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}

	return dto.OrthoContractFromModel(contract), nil
}
