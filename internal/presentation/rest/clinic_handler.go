package rest

import (
	"log/slog"
	"net/http"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/infrastructure/importer"
)

// maxImportBody caps uploaded spreadsheets at 10 MiB.
const maxImportBody = 10 << 20

// ClinicHandler serves the clinical side: patients, anamnesis,
// professionals, appointments, the waitlist kanban and budgets.
type ClinicHandler struct {
	patients      *usecase.PatientUseCase
	anamnesis     *usecase.AnamnesisUseCase
	professionals *usecase.ProfessionalUseCase
	appointments  *usecase.AppointmentUseCase
	waitlist      *usecase.WaitlistUseCase
	moveWaitlist  *usecase.MoveWaitlistEntryUseCase
	budgets       *usecase.BudgetUseCase
	logger        *slog.Logger
}

func NewClinicHandler(
	patients *usecase.PatientUseCase,
	anamnesis *usecase.AnamnesisUseCase,
	professionals *usecase.ProfessionalUseCase,
	appointments *usecase.AppointmentUseCase,
	waitlist *usecase.WaitlistUseCase,
	moveWaitlist *usecase.MoveWaitlistEntryUseCase,
	budgets *usecase.BudgetUseCase,
	logger *slog.Logger,
) *ClinicHandler {
	return &ClinicHandler{
		patients:      patients,
		anamnesis:     anamnesis,
		professionals: professionals,
		appointments:  appointments,
		waitlist:      waitlist,
		moveWaitlist:  moveWaitlist,
		budgets:       budgets,
		logger:        logger,
	}
}

func (h *ClinicHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreatePatientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.patients.Create(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ClinicHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.UpdatePatientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	req.PatientID = r.PathValue("id")
	resp, err := h.patients.Update(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.patients.Get(r.Context(), claims.ClinicID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.patients.Search(r.Context(), claims.ClinicID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.patients.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ImportPatients accepts an xlsx upload and registers its rows. Bad rows
// are skipped and reported, never failing the whole sheet.
func (h *ClinicHandler) ImportPatients(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	rows, err := importer.ParsePatientSheet(http.MaxBytesReader(w, r.Body, maxImportBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	resp, err := h.patients.Import(r.Context(), claims.ClinicID, rows)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) UpsertAnamnesis(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.UpsertAnamnesisRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	req.PatientID = r.PathValue("id")
	resp, err := h.anamnesis.Upsert(r.Context(), claims.ClinicID, claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) GetAnamnesis(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.anamnesis.Get(r.Context(), claims.ClinicID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateProfessionalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.professionals.Create(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ClinicHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProfessionalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	req.ProfessionalID = r.PathValue("id")
	resp, err := h.professionals.Update(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	activeOnly := r.URL.Query().Get("active") == "true"
	resp, err := h.professionals.List(r.Context(), claims.ClinicID, activeOnly)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.professionals.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ClinicHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateAppointmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.appointments.Create(r.Context(), claims.ClinicID, claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ClinicHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.UpdateAppointmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	req.AppointmentID = r.PathValue("id")
	resp, err := h.appointments.Update(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.appointments.ListByRange(r.Context(), claims.ClinicID, from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.appointments.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ClinicHandler) CreateWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateWaitlistEntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.waitlist.Create(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ClinicHandler) ListWaitlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.waitlist.List(r.Context(), claims.ClinicID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) MoveWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.MoveWaitlistEntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.moveWaitlist.Execute(r.Context(), claims.ClinicID, claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) ListWaitlistEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.waitlist.History(r.Context(), claims.ClinicID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) DeleteWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.waitlist.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ClinicHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.budgets.Create(r.Context(), claims.ClinicID, claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ClinicHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.budgets.List(r.Context(), claims.ClinicID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type setBudgetStatusRequest struct {
	Status string `json:"status"`
}

func (h *ClinicHandler) SetBudgetStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setBudgetStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.budgets.SetStatus(r.Context(), claims.ClinicID, id, req.Status)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) QuoteBudget(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.QuoteBudgetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.budgets.Quote(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ClinicHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.budgets.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
