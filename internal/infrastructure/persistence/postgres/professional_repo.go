package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
)

// ProfessionalRepository is the pgx implementation of
// port.ProfessionalRepository.
type ProfessionalRepository struct {
	pool *pgxpool.Pool
}

func NewProfessionalRepository(pool *pgxpool.Pool) *ProfessionalRepository {
	return &ProfessionalRepository{pool: pool}
}

const professionalColumns = `id, clinic_id, name, specialty, active, created_at`

func scanProfessional(row pgx.Row) (model.Professional, error) {
	var p model.Professional
	err := row.Scan(&p.ID, &p.ClinicID, &p.Name, &p.Specialty, &p.Active, &p.CreatedAt)
	return p, err
}

func (repo *ProfessionalRepository) Create(ctx context.Context, p model.Professional) error {
	_, err := repo.pool.Exec(ctx,
		`INSERT INTO professionals (id, clinic_id, name, specialty, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.ClinicID, p.Name, p.Specialty, p.Active, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert professional: %w", err)
	}
	return nil
}

func (repo *ProfessionalRepository) Update(ctx context.Context, p model.Professional) error {
	tag, err := repo.pool.Exec(ctx,
		`UPDATE professionals SET name = $1, specialty = $2, active = $3
		 WHERE clinic_id = $4 AND id = $5`,
		p.Name, p.Specialty, p.Active, p.ClinicID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update professional: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *ProfessionalRepository) List(ctx context.Context, clinicID uuid.UUID, activeOnly bool) ([]model.Professional, error) {
	sql := `SELECT ` + professionalColumns + ` FROM professionals WHERE clinic_id = $1`
	if activeOnly {
		sql += ` AND active`
	}
	sql += ` ORDER BY name`

	rows, err := repo.pool.Query(ctx, sql, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	var out []model.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (repo *ProfessionalRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Professional, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+professionalColumns+` FROM professionals WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	p, err := scanProfessional(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Professional{}, model.ErrNotFound
	}
	if err != nil {
		return model.Professional{}, fmt.Errorf("select professional: %w", err)
	}
	return p, nil
}

func (repo *ProfessionalRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM professionals WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
