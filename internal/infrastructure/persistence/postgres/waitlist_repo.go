package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/valueobject"
)

// WaitlistRepository is the pgx implementation of port.WaitlistRepository.
// Moves are conditional on the column the mover last saw; a miss means
// someone else moved the card first.
type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{pool: pool}
}

const waitlistColumns = `
	id, clinic_id, patient_id, specialty, preferred_professional_id,
	priority, status, notes, created_at`

func scanWaitlistEntry(row pgx.Row) (model.WaitlistEntry, error) {
	var (
		e      model.WaitlistEntry
		status string
	)
	err := row.Scan(
		&e.ID, &e.ClinicID, &e.PatientID, &e.Specialty, &e.PreferredProfessionalID,
		&e.Priority, &status, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		return model.WaitlistEntry{}, err
	}
	e.Status = valueobject.WaitlistStatus(status)
	return e, nil
}

func (repo *WaitlistRepository) Create(ctx context.Context, e model.WaitlistEntry) error {
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO waitlist_entries (
			id, clinic_id, patient_id, specialty, preferred_professional_id,
			priority, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.ClinicID, e.PatientID, e.Specialty, e.PreferredProfessionalID,
		e.Priority, string(e.Status), e.Notes, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist entry: %w", err)
	}
	return nil
}

func (repo *WaitlistRepository) GetByID(ctx context.Context, clinicID, id uuid.UUID) (model.WaitlistEntry, error) {
	row := repo.pool.QueryRow(ctx,
		`SELECT `+waitlistColumns+` FROM waitlist_entries WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	e, err := scanWaitlistEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WaitlistEntry{}, model.ErrNotFound
	}
	if err != nil {
		return model.WaitlistEntry{}, fmt.Errorf("select waitlist entry: %w", err)
	}
	return e, nil
}

func (repo *WaitlistRepository) List(ctx context.Context, clinicID uuid.UUID) ([]model.WaitlistEntry, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+waitlistColumns+`
		 FROM waitlist_entries
		 WHERE clinic_id = $1
		 ORDER BY priority DESC, created_at`,
		clinicID,
	)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	var out []model.WaitlistEntry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (repo *WaitlistRepository) Move(ctx context.Context, clinicID, id uuid.UUID, from, to valueobject.WaitlistStatus) error {
	tag, err := repo.pool.Exec(ctx,
		`UPDATE waitlist_entries SET status = $1
		 WHERE clinic_id = $2 AND id = $3 AND status = $4`,
		string(to), clinicID, id, string(from),
	)
	if err != nil {
		return fmt.Errorf("move waitlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrConcurrentModification
	}
	return nil
}

func (repo *WaitlistRepository) AppendEvent(ctx context.Context, ev model.WaitlistEvent) error {
	var from *string
	if ev.FromStatus != nil {
		s := string(*ev.FromStatus)
		from = &s
	}
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO waitlist_events (
			id, clinic_id, waitlist_entry_id, from_status, to_status,
			actor_user_id, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.ID, ev.ClinicID, ev.WaitlistEntryID, from, string(ev.ToStatus),
		ev.ActorUserID, ev.Note, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append waitlist event: %w", err)
	}
	return nil
}

func (repo *WaitlistRepository) ListEvents(ctx context.Context, clinicID, entryID uuid.UUID) ([]model.WaitlistEvent, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT id, clinic_id, waitlist_entry_id, from_status, to_status,
			actor_user_id, note, created_at
		FROM waitlist_events
		WHERE clinic_id = $1 AND waitlist_entry_id = $2
		ORDER BY created_at`,
		clinicID, entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list waitlist events: %w", err)
	}
	defer rows.Close()

	var out []model.WaitlistEvent
	for rows.Next() {
		var (
			ev   model.WaitlistEvent
			from *string
			to   string
		)
		err := rows.Scan(
			&ev.ID, &ev.ClinicID, &ev.WaitlistEntryID, &from, &to,
			&ev.ActorUserID, &ev.Note, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan waitlist event: %w", err)
		}
		if from != nil {
			s := valueobject.WaitlistStatus(*from)
			ev.FromStatus = &s
		}
		ev.ToStatus = valueobject.WaitlistStatus(to)
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (repo *WaitlistRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx,
		`DELETE FROM waitlist_entries WHERE clinic_id = $1 AND id = $2`,
		clinicID, id,
	)
	if err != nil {
		return fmt.Errorf("delete waitlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
