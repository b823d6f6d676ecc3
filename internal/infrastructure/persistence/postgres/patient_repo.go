package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	pgutil "github.com/dentara/dentara/pkg/postgres"
)

// PatientRepository is the pgx implementation of port.PatientRepository.
type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

const patientColumns = `
	id, clinic_id, code, name, phone, email, cpf, birth_date,
	address, clinical_lead_id, ortho_lead_id, created_at`

const insertPatientSQL = `
	INSERT INTO patients (
		id, clinic_id, code, name, phone, email, cpf, birth_date,
		address, clinical_lead_id, ortho_lead_id, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func patientArgs(p model.Patient) []any {
	return []any{
		p.ID, p.ClinicID, p.Code, p.Name, p.Phone, p.Email, p.CPF, p.BirthDate,
		p.Address, p.ClinicalLeadID, p.OrthodonticsLeadID, p.CreatedAt,
	}
}

func scanPatient(row pgx.Row) (model.Patient, error) {
	var p model.Patient
	err := row.Scan(
		&p.ID, &p.ClinicID, &p.Code, &p.Name, &p.Phone, &p.Email, &p.CPF, &p.BirthDate,
		&p.Address, &p.ClinicalLeadID, &p.OrthodonticsLeadID, &p.CreatedAt,
	)
	return p, err
}

func (repo *PatientRepository) Create(ctx context.Context, p model.Patient) error {
	if _, err := repo.pool.Exec(ctx, insertPatientSQL, patientArgs(p)...); err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (repo *PatientRepository) CreateBatch(ctx context.Context, batch []model.Patient) error {
	return pgutil.WithTransaction(ctx, repo.pool, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		for _, p := range batch {
			b.Queue(insertPatientSQL, patientArgs(p)...)
		}
		results := tx.SendBatch(ctx, b)
		defer results.Close()
		for range batch {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("insert patient batch: %w", err)
			}
		}
		return nil
	})
}

func (repo *PatientRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Patient, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Patient{}, model.ErrNotFound
	}
	if err != nil {
		return model.Patient{}, fmt.Errorf("select patient: %w", err)
	}
	return p, nil
}

func (repo *PatientRepository) Update(ctx context.Context, p model.Patient) error {
	tag, err := repo.pool.Exec(ctx,
		`UPDATE patients SET
			name = $1, phone = $2, email = $3, cpf = $4, birth_date = $5,
			address = $6, clinical_lead_id = $7, ortho_lead_id = $8
		 WHERE clinic_id = $9 AND id = $10`,
		p.Name, p.Phone, p.Email, p.CPF, p.BirthDate,
		p.Address, p.ClinicalLeadID, p.OrthodonticsLeadID,
		p.ClinicID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *PatientRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM patients WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Search matches name, phone, email or CPF case-insensitively. The query
// string is passed as a bind parameter, never interpolated.
func (repo *PatientRepository) Search(ctx context.Context, clinicID uuid.UUID, query string, limit int) ([]model.Patient, error) {
	sql := `SELECT ` + patientColumns + ` FROM patients WHERE clinic_id = $1`
	args := []any{clinicID}
	if query != "" {
		sql += ` AND (name ILIKE '%' || $2 || '%'
			OR phone ILIKE '%' || $2 || '%'
			OR email ILIKE '%' || $2 || '%'
			OR cpf ILIKE '%' || $2 || '%')`
		args = append(args, query)
	}
	sql += fmt.Sprintf(` ORDER BY name LIMIT %d`, limit)

	rows, err := repo.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer rows.Close()

	var out []model.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// NextCode allocates the next sequential per-clinic patient code.
func (repo *PatientRepository) NextCode(ctx context.Context, clinicID uuid.UUID) (string, error) {
	var n int
	err := repo.pool.QueryRow(ctx,
		`SELECT COUNT(*) + 1 FROM patients WHERE clinic_id = $1`,
		clinicID,
	).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("next patient code: %w", err)
	}
	return fmt.Sprintf("P%05d", n), nil
}
