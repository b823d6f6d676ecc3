package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// CreateReceivableUseCase records a single manual charge.
type CreateReceivableUseCase struct {
	receivableRepo port.ReceivableRepository
}

// NewCreateReceivableUseCase wires dependencies.
func NewCreateReceivableUseCase(receivableRepo port.ReceivableRepository) *CreateReceivableUseCase {
	return &CreateReceivableUseCase{receivableRepo: receivableRepo}
}

// Execute validates and persists the receivable.
func (uc *CreateReceivableUseCase) Execute(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreateReceivableRequest,
) (dto.ReceivableResponse, error) {
	now := time.Now().UTC()

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return dto.ReceivableResponse{}, err
	}
	patientID, err := parseIDPtr(req.PatientID)
	if err != nil {
		return dto.ReceivableResponse{}, err
	}

	receivable, err := model.NewReceivable(
		clinicID, patientID, valueobject.OriginManual,
		req.Amount, dueDate, req.Description, now,
	)
	if err != nil {
		return dto.ReceivableResponse{}, fmt.Errorf("build receivable: %w", err)
	}

	if err := uc.receivableRepo.Create(ctx, receivable); err != nil {
		return dto.ReceivableResponse{}, fmt.Errorf("persist receivable: %w", err)
	}

	return dto.ReceivableFromModel(receivable), nil
}
