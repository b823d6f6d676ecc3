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

// BudgetUseCase covers treatment proposals: draft, approve or cancel,
// preview the payment schedule.
type BudgetUseCase struct {
	budgetRepo port.BudgetRepository
	publisher  port.EventPublisher
	logger     *slog.Logger
}

// NewBudgetUseCase wires dependencies.
func NewBudgetUseCase(
	budgetRepo port.BudgetRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo: budgetRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create drafts a budget in pending status.
func (uc *BudgetUseCase) Create(
	ctx context.Context,
	clinicID, actorID uuid.UUID,
	req dto.CreateBudgetRequest,
) (dto.BudgetResponse, error) {
	budgetType, err := valueobject.NewBudgetType(req.Type)
	if err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	orthoType, err := valueobject.NewOrthoType(req.OrthoType)
	if err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	patientID, err := parseIDPtr(req.PatientID)
	if err != nil {
		return dto.BudgetResponse{}, err
	}

	upsells := make([]model.BudgetUpsell, len(req.Upsells))
	for i, u := range req.Upsells {
		upsells[i] = model.BudgetUpsell{
			ID:           u.ID,
			Title:        u.Title,
			Kind:         u.Kind,
			MonthlyDelta: u.MonthlyDelta,
			OneTimeDelta: u.OneTimeDelta,
		}
	}
	items := make([]model.BudgetItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = model.BudgetItem{
			ID:        it.ID,
			Procedure: it.Procedure,
			Benefit:   it.Benefit,
			Entry:     it.Entry,
			Qty:       it.Qty,
			Total:     it.Total,
			TotalCash: it.TotalCash,
		}
	}

	budget, err := model.NewBudget(
		clinicID, patientID, &actorID,
		budgetType, orthoType, req.Model,
		req.MonthlyValue, req.Installments,
		req.Total, req.CashValue,
		upsells, items, req.DueDay,
		req.IsCash, req.IsPlanComplement,
		req.Notes, time.Now().UTC(),
	)
	if err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("build budget: %w", err)
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("persist budget: %w", err)
	}
	return dto.BudgetFromModel(budget), nil
}

// SetStatus approves or cancels a pending budget.
func (uc *BudgetUseCase) SetStatus(
	ctx context.Context,
	clinicID, budgetID uuid.UUID,
	status string,
) (dto.BudgetResponse, error) {
	to, err := valueobject.NewBudgetStatus(status)
	if err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	if to == valueobject.BudgetPending {
		return dto.BudgetResponse{}, fmt.Errorf("%w: cannot move back to pending", model.ErrInvalidInput)
	}

	if err := uc.budgetRepo.UpdateStatus(ctx, clinicID, budgetID, to); err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("update status: %w", err)
	}

	budget, err := uc.budgetRepo.GetByID(ctx, clinicID, budgetID)
	if err != nil {
		return dto.BudgetResponse{}, fmt.Errorf("reload budget: %w", err)
	}

	ev := event.NewBudgetStatusChanged(clinicID, budgetID, string(to))
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}
	return dto.BudgetFromModel(budget), nil
}

// Quote previews the budget's payment schedule without persisting
// anything.
func (uc *BudgetUseCase) Quote(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.QuoteBudgetRequest,
) ([]dto.InstallmentResponse, error) {
	budgetID, err := parseID(req.BudgetID)
	if err != nil {
		return nil, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.GetByID(ctx, clinicID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("find budget: %w", err)
	}

	schedule, err := budget.Quote(start)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	return dto.InstallmentsFromModel(schedule), nil
}

// List returns the clinic's budgets.
func (uc *BudgetUseCase) List(ctx context.Context, clinicID uuid.UUID) ([]dto.BudgetResponse, error) {
	items, err := uc.budgetRepo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return dto.BudgetsFromModel(items), nil
}

// Delete removes a budget.
func (uc *BudgetUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.budgetRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
