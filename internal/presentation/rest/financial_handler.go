package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dentara/dentara/internal/application/dto"
	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
	"github.com/dentara/dentara/pkg/auth"
)

// FinancialHandler serves the money side: receivables, payables,
// transactions, ortho contracts, the chart of accounts and the summary
// dashboard.
type FinancialHandler struct {
	createPlan     *usecase.CreateInstallmentPlanUseCase
	settle         *usecase.SettleReceivableUseCase
	renegotiate    *usecase.RenegotiatePlanUseCase
	createRecv     *usecase.CreateReceivableUseCase
	createTx       *usecase.CreateTransactionUseCase
	payables       *usecase.PayableUseCase
	createContract *usecase.CreateOrthoContractUseCase
	cancelContract *usecase.CancelOrthoContractUseCase
	queries        *usecase.FinancialQueryUseCase
	ledger         *usecase.LedgerUseCase
	logger         *slog.Logger
}

func NewFinancialHandler(
	createPlan *usecase.CreateInstallmentPlanUseCase,
	settle *usecase.SettleReceivableUseCase,
	renegotiate *usecase.RenegotiatePlanUseCase,
	createRecv *usecase.CreateReceivableUseCase,
	createTx *usecase.CreateTransactionUseCase,
	payables *usecase.PayableUseCase,
	createContract *usecase.CreateOrthoContractUseCase,
	cancelContract *usecase.CancelOrthoContractUseCase,
	queries *usecase.FinancialQueryUseCase,
	ledger *usecase.LedgerUseCase,
	logger *slog.Logger,
) *FinancialHandler {
	return &FinancialHandler{
		createPlan:     createPlan,
		settle:         settle,
		renegotiate:    renegotiate,
		createRecv:     createRecv,
		createTx:       createTx,
		payables:       payables,
		createContract: createContract,
		cancelContract: cancelContract,
		queries:        queries,
		ledger:         ledger,
		logger:         logger,
	}
}

// clinicFrom pulls the tenant out of the validated token. Request
// payloads never carry a clinic id.
func clinicFrom(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no claims in context"})
		return nil, false
	}
	return claims, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *FinancialHandler) CreateReceivable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateReceivableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.createRecv.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListReceivables(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.queries.ListReceivables(r.Context(), claims.ClinicID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) DeleteReceivable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteReceivable(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FinancialHandler) CreateInstallmentPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateInstallmentPlanRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.createPlan.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) SettleReceivable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.SettleReceivableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.settle.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) Renegotiate(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.RenegotiateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.renegotiate.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) CreatePayable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreatePayableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.payables.Create(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListPayables(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.payables.List(r.Context(), claims.ClinicID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) SettlePayable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.SettlePayableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.payables.Settle(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) DeletePayable(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.payables.Delete(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FinancialHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.createTx.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.queries.ListTransactions(r.Context(), claims.ClinicID, from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.queries.DeleteTransaction(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FinancialHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req dto.CreateOrthoContractRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.createContract.Execute(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.queries.ListContracts(r.Context(), claims.ClinicID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) ContractReceivables(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.queries.ContractReceivables(r.Context(), claims.ClinicID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) CancelContract(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.cancelContract.Execute(r.Context(), claims.ClinicID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) Summary(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	req := dto.SummaryRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	resp, err := h.queries.Summary(r.Context(), claims.ClinicID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type createCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *FinancialHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req createCategoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.ledger.CreateCategory(r.Context(), claims.ClinicID, req.Name, req.Type)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.ledger.ListCategories(r.Context(), claims.ClinicID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.DeleteCategory(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type createCostCenterRequest struct {
	Name string `json:"name"`
}

func (h *FinancialHandler) CreateCostCenter(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	var req createCostCenterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	resp, err := h.ledger.CreateCostCenter(r.Context(), claims.ClinicID, req.Name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinancialHandler) ListCostCenters(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	resp, err := h.ledger.ListCostCenters(r.Context(), claims.ClinicID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinancialHandler) DeleteCostCenter(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.DeleteCostCenter(r.Context(), claims.ClinicID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// dateRange parses from/to query params, defaulting to the current month.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-24 * time.Hour)

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(dto.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, model.ErrInvalidInput
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(dto.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, model.ErrInvalidInput
		}
		to = t
	}
	return from, to, nil
}
