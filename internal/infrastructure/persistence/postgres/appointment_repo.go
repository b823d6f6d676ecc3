package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// AppointmentRepository is the pgx implementation of
// port.AppointmentRepository.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `
	id, clinic_id, patient_id, professional_id, title,
	start_at, end_at, status, notes, created_by, created_at, updated_at`

func scanAppointment(row pgx.Row) (model.Appointment, error) {
	var (
		a      model.Appointment
		status string
	)
	err := row.Scan(
		&a.ID, &a.ClinicID, &a.PatientID, &a.ProfessionalID, &a.Title,
		&a.StartAt, &a.EndAt, &status, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	a.Status = valueobject.AppointmentStatus(status)
	return a, nil
}

func (repo *AppointmentRepository) Create(ctx context.Context, a model.Appointment) error {
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO appointments (
			id, clinic_id, patient_id, professional_id, title,
			start_at, end_at, status, notes, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.ClinicID, a.PatientID, a.ProfessionalID, a.Title,
		a.StartAt, a.EndAt, string(a.Status), a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (repo *AppointmentRepository) Update(ctx context.Context, a model.Appointment) error {
	tag, err := repo.pool.Exec(ctx, `
		UPDATE appointments SET
			patient_id = $1, professional_id = $2, title = $3,
			start_at = $4, end_at = $5, status = $6, notes = $7, updated_at = $8
		WHERE clinic_id = $9 AND id = $10`,
		a.PatientID, a.ProfessionalID, a.Title,
		a.StartAt, a.EndAt, string(a.Status), a.Notes, a.UpdatedAt,
		a.ClinicID, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (repo *AppointmentRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.Appointment, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	a, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Appointment{}, model.ErrNotFound
	}
	if err != nil {
		return model.Appointment{}, fmt.Errorf("select appointment: %w", err)
	}
	return a, nil
}

// ListByRange returns slots overlapping [from, to).
func (repo *AppointmentRepository) ListByRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]model.Appointment, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments
		 WHERE clinic_id = $1 AND start_at < $3 AND end_at > $2
		 ORDER BY start_at`,
		clinicID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (repo *AppointmentRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM appointments WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
