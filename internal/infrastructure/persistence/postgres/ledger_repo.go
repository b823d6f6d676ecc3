package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// CategoryRepository is the pgx implementation of port.CategoryRepository.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (repo *CategoryRepository) Create(ctx context.Context, c model.Category) error {
	_, err := repo.pool.Exec(ctx,
		`INSERT INTO categories (id, clinic_id, name, type, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ClinicID, c.Name, string(c.Type), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (repo *CategoryRepository) List(ctx context.Context, clinicID uuid.UUID) ([]model.Category, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT id, clinic_id, name, type, created_at
		 FROM categories WHERE clinic_id = $1 ORDER BY type, name`,
		clinicID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var (
			c model.Category
			t string
		)
		if err := rows.Scan(&c.ID, &c.ClinicID, &c.Name, &t, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = valueobject.FinancialType(t)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (repo *CategoryRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM categories WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CostCenterRepository is the pgx implementation of
// port.CostCenterRepository.
type CostCenterRepository struct {
	pool *pgxpool.Pool
}

func NewCostCenterRepository(pool *pgxpool.Pool) *CostCenterRepository {
	return &CostCenterRepository{pool: pool}
}

func (repo *CostCenterRepository) Create(ctx context.Context, c model.CostCenter) error {
	_, err := repo.pool.Exec(ctx,
		`INSERT INTO cost_centers (id, clinic_id, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		c.ID, c.ClinicID, c.Name, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

func (repo *CostCenterRepository) List(ctx context.Context, clinicID uuid.UUID) ([]model.CostCenter, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT id, clinic_id, name, created_at
		 FROM cost_centers WHERE clinic_id = $1 ORDER BY name`,
		clinicID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()

	var out []model.CostCenter
	for rows.Next() {
		var c model.CostCenter
		if err := rows.Scan(&c.ID, &c.ClinicID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (repo *CostCenterRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM cost_centers WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete cost center: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
