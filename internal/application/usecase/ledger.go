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

// LedgerUseCase maintains categories and cost centers.
type LedgerUseCase struct {
	categoryRepo   port.CategoryRepository
	costCenterRepo port.CostCenterRepository
}

// NewLedgerUseCase wires dependencies.
func NewLedgerUseCase(
	categoryRepo port.CategoryRepository,
	costCenterRepo port.CostCenterRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		categoryRepo:   categoryRepo,
		costCenterRepo: costCenterRepo,
	}
}

// CreateCategory adds a chart-of-accounts bucket.
func (uc *LedgerUseCase) CreateCategory(
	ctx context.Context,
	clinicID uuid.UUID,
	name, categoryType string,
) (dto.CategoryResponse, error) {
	t, err := valueobject.NewFinancialType(categoryType)
	if err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	category, err := model.NewCategory(clinicID, name, t, time.Now().UTC())
	if err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("build category: %w", err)
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("persist category: %w", err)
	}
	return dto.CategoryFromModel(category), nil
}

// ListCategories returns all buckets.
func (uc *LedgerUseCase) ListCategories(ctx context.Context, clinicID uuid.UUID) ([]dto.CategoryResponse, error) {
	items, err := uc.categoryRepo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]dto.CategoryResponse, len(items))
	for i, c := range items {
		out[i] = dto.CategoryFromModel(c)
	}
	return out, nil
}

// DeleteCategory removes a bucket.
func (uc *LedgerUseCase) DeleteCategory(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.categoryRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CreateCostCenter adds a cost center.
func (uc *LedgerUseCase) CreateCostCenter(
	ctx context.Context,
	clinicID uuid.UUID,
	name string,
) (dto.CostCenterResponse, error) {
	center, err := model.NewCostCenter(clinicID, name, time.Now().UTC())
	if err != nil {
		return dto.CostCenterResponse{}, fmt.Errorf("build cost center: %w", err)
	}
	if err := uc.costCenterRepo.Create(ctx, center); err != nil {
		return dto.CostCenterResponse{}, fmt.Errorf("persist cost center: %w", err)
	}
	return dto.CostCenterFromModel(center), nil
}

// ListCostCenters returns all cost centers.
func (uc *LedgerUseCase) ListCostCenters(ctx context.Context, clinicID uuid.UUID) ([]dto.CostCenterResponse, error) {
	items, err := uc.costCenterRepo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	out := make([]dto.CostCenterResponse, len(items))
	for i, c := range items {
		out[i] = dto.CostCenterFromModel(c)
	}
	return out, nil
}

// DeleteCostCenter removes a cost center.
func (uc *LedgerUseCase) DeleteCostCenter(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.costCenterRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete cost center: %w", err)
	}
	return nil
}
