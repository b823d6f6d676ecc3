package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/domain/event"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/internal/domain/port"
)

const searchLimit = 50

// searchSanitizer drops LIKE metacharacters and punctuation from search
// input so a stray % or _ cannot widen the match and a trailing \ cannot
// mangle the pattern.
var searchSanitizer = strings.NewReplacer(
	"%", "", "_", "", `\`, "", ",", "", ".", "",
	"(", "", ")", "", `"`, "", "'", "",
)

// PatientUseCase covers the patient master record: CRUD, search and bulk
// import.
type PatientUseCase struct {
	patientRepo port.PatientRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewPatientUseCase wires dependencies.
func NewPatientUseCase(
	patientRepo port.PatientRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *PatientUseCase {
	return &PatientUseCase{
		patientRepo: patientRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create registers a patient with a freshly allocated per-clinic code.
func (uc *PatientUseCase) Create(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.CreatePatientRequest,
) (dto.PatientResponse, error) {
	now := time.Now().UTC()

	birthDate, err := parseDatePtr(req.BirthDate)
	if err != nil {
		return dto.PatientResponse{}, err
	}

	code, err := uc.patientRepo.NextCode(ctx, clinicID)
	if err != nil {
		return dto.PatientResponse{}, fmt.Errorf("allocate code: %w", err)
	}

	patient, err := model.NewPatient(
		clinicID, code, req.Name, req.Phone, req.Email, req.CPF,
		req.Address, birthDate, now,
	)
	if err != nil {
		return dto.PatientResponse{}, fmt.Errorf("build patient: %w", err)
	}

	if err := uc.patientRepo.Create(ctx, patient); err != nil {
		return dto.PatientResponse{}, fmt.Errorf("persist patient: %w", err)
	}

	ev := event.NewPatientCreated(clinicID, patient.ID, patient.Name)
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("publish failed", "event", ev.EventType(), "error", err)
	}
	return dto.PatientFromModel(patient), nil
}

// Update edits master data in place.
func (uc *PatientUseCase) Update(
	ctx context.Context,
	clinicID uuid.UUID,
	req dto.UpdatePatientRequest,
) (dto.PatientResponse, error) {
	id, err := parseID(req.PatientID)
	if err != nil {
		return dto.PatientResponse{}, err
	}
	birthDate, err := parseDatePtr(req.BirthDate)
	if err != nil {
		return dto.PatientResponse{}, err
	}

	patient, err := uc.patientRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.PatientResponse{}, fmt.Errorf("find patient: %w", err)
	}

	updated, err := model.NewPatient(
		clinicID, patient.Code, req.Name, req.Phone, req.Email, req.CPF,
		req.Address, birthDate, patient.CreatedAt,
	)
	if err != nil {
		return dto.PatientResponse{}, fmt.Errorf("build patient: %w", err)
	}
	updated.ID = patient.ID

	if err := uc.patientRepo.Update(ctx, updated); err != nil {
		return dto.PatientResponse{}, fmt.Errorf("persist patient: %w", err)
	}
	return dto.PatientFromModel(updated), nil
}

// Get loads one patient.
func (uc *PatientUseCase) Get(ctx context.Context, clinicID, id uuid.UUID) (dto.PatientResponse, error) {
	patient, err := uc.patientRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		return dto.PatientResponse{}, fmt.Errorf("find patient: %w", err)
	}
	return dto.PatientFromModel(patient), nil
}

// Search matches name, phone, email or CPF; empty query lists all.
func (uc *PatientUseCase) Search(
	ctx context.Context,
	clinicID uuid.UUID,
	query string,
) ([]dto.PatientResponse, error) {
	items, err := uc.patientRepo.Search(ctx, clinicID, searchSanitizer.Replace(query), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return dto.PatientsFromModel(items), nil
}

// Delete removes a patient.
func (uc *PatientUseCase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	if err := uc.patientRepo.Delete(ctx, clinicID, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

// Import bulk-creates patients from parsed sheet rows. Rows that fail
// validation are skipped and reported, not fatal.
func (uc *PatientUseCase) Import(
	ctx context.Context,
	clinicID uuid.UUID,
	rows []dto.CreatePatientRequest,
) (dto.ImportPatientsResponse, error) {
	now := time.Now().UTC()

	var (
		batch  []model.Patient
		report dto.ImportPatientsResponse
	)
	for i, row := range rows {
		birthDate, err := parseDatePtr(row.BirthDate)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: bad birth date", i+1))
			continue
		}
		code, err := uc.patientRepo.NextCode(ctx, clinicID)
		if err != nil {
			return report, fmt.Errorf("allocate code: %w", err)
		}
		patient, err := model.NewPatient(
			clinicID, code, row.Name, row.Phone, row.Email, row.CPF,
			row.Address, birthDate, now,
		)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		batch = append(batch, patient)
	}

	if len(batch) > 0 {
		if err := uc.patientRepo.CreateBatch(ctx, batch); err != nil {
			return report, fmt.Errorf("persist batch: %w", err)
		}
	}
	report.Imported = len(batch)

	uc.logger.Info("patient import finished",
		"clinic_id", clinicID,
		"imported", report.Imported,
		"skipped", report.Skipped,
	)
	return report, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
