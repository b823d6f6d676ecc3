package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentara/dentara/internal/domain/model"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateReceivableRequest creates a single manual charge.
type CreateReceivableRequest struct {
	PatientID   *string         `json:"patient_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
	Description string          `json:"description"`
}

// CreateInstallmentPlanRequest splits a total into monthly installments.
type CreateInstallmentPlanRequest struct {
	PatientID    *string         `json:"patient_id,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Installments int             `json:"installments"`
	FirstDueDate string          `json:"first_due_date"`
}

// SettleReceivableRequest records a payment. A zero amount settles the
// full outstanding balance.
type SettleReceivableRequest struct {
	ReceivableID  string          `json:"receivable_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

// RenegotiateRequest replaces open installments with a fresh plan over
// their outstanding balance.
type RenegotiateRequest struct {
	ReceivableIDs   []string `json:"receivable_ids"`
	NewInstallments int      `json:"new_installments"`
	FirstDueDate    string   `json:"first_due_date"`
}

// CreatePayableRequest records a clinic obligation.
type CreatePayableRequest struct {
	Supplier     string          `json:"supplier"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CostCenterID *string         `json:"cost_center_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
	Description  string          `json:"description"`
}

// SettlePayableRequest pays a payable in full.
type SettlePayableRequest struct {
	PayableID     string `json:"payable_id"`
	PaymentMethod string `json:"payment_method"`
}

// EntryAllocationRequest is one rateio slice of a transaction.
type EntryAllocationRequest struct {
	CategoryID   *string         `json:"category_id,omitempty"`
	CostCenterID *string         `json:"cost_center_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// CreateTransactionRequest records a cash movement. When ReceivableID is
// set the linked receivable settles in the same transaction boundary.
type CreateTransactionRequest struct {
	Type          string                   `json:"type"`
	PatientID     *string                  `json:"patient_id,omitempty"`
	Amount        decimal.Decimal          `json:"amount"`
	Date          string                   `json:"date"`
	Description   string                   `json:"description"`
	PaymentMethod string                   `json:"payment_method"`
	ReceivableID  *string                  `json:"receivable_id,omitempty"`
	Entries       []EntryAllocationRequest `json:"entries,omitempty"`
}

// CreateOrthoContractRequest opens a contract and its receivable batch.
type CreateOrthoContractRequest struct {
	PatientID      string          `json:"patient_id"`
	ProfessionalID *string         `json:"professional_id,omitempty"`
	BudgetID       *string         `json:"budget_id,omitempty"`
	MonthlyAmount  decimal.Decimal `json:"monthly_amount"`
	TotalMonths    int             `json:"total_months"`
	DueDay         int             `json:"due_day"`
	StartDate      string          `json:"start_date"`
	Notes          string          `json:"notes"`
}

// CreatePatientRequest registers a patient.
type CreatePatientRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	BirthDate *string `json:"birth_date,omitempty"`
	Address   string  `json:"address"`
}

// UpdatePatientRequest edits a patient's master data.
type UpdatePatientRequest struct {
	PatientID string  `json:"patient_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	BirthDate *string `json:"birth_date,omitempty"`
	Address   string  `json:"address"`
}

// UpsertAnamnesisRequest creates or replaces a patient's questionnaire.
type UpsertAnamnesisRequest struct {
	PatientID           string `json:"patient_id"`
	HasAllergy          bool   `json:"has_allergy"`
	AllergyDetails      string `json:"allergy_details"`
	HasHeartDisease     bool   `json:"has_heart_disease"`
	HeartDetails        string `json:"heart_details"`
	HasDiabetes         bool   `json:"has_diabetes"`
	DiabetesDetails     string `json:"diabetes_details"`
	HasHypertension     bool   `json:"has_hypertension"`
	HypertensionDetails string `json:"hypertension_details"`
	HasBleedingDisorder bool   `json:"has_bleeding_disorder"`
	BleedingDetails     string `json:"bleeding_details"`
	UsesMedication      bool   `json:"uses_medication"`
	MedicationDetails   string `json:"medication_details"`
	IsPregnant          bool   `json:"is_pregnant"`
	IsSmoker            bool   `json:"is_smoker"`
	OtherConditions     string `json:"other_conditions"`
	HasAlert            bool   `json:"has_alert"`
	AlertMessage        string `json:"alert_message"`
}

// CreateProfessionalRequest registers a clinician.
type CreateProfessionalRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// UpdateProfessionalRequest edits a clinician.
type UpdateProfessionalRequest struct {
	ProfessionalID string `json:"professional_id"`
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
	Active         bool   `json:"active"`
}

// CreateAppointmentRequest books a calendar slot.
type CreateAppointmentRequest struct {
	PatientID      *string   `json:"patient_id,omitempty"`
	ProfessionalID string    `json:"professional_id"`
	Title          string    `json:"title"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Notes          string    `json:"notes"`
}

// UpdateAppointmentRequest reschedules or re-statuses a slot.
type UpdateAppointmentRequest struct {
	AppointmentID string    `json:"appointment_id"`
	Title         string    `json:"title"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

// CreateWaitlistEntryRequest adds a card to the kanban.
type CreateWaitlistEntryRequest struct {
	PatientID               string  `json:"patient_id"`
	Specialty               string  `json:"specialty"`
	PreferredProfessionalID *string `json:"preferred_professional_id,omitempty"`
	Priority                int     `json:"priority"`
	Notes                   string  `json:"notes"`
}

// MoveWaitlistEntryRequest moves a card. FromStatus is the column the
// mover saw; the move fails if the card moved under them.
type MoveWaitlistEntryRequest struct {
	EntryID    string `json:"entry_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Note       string `json:"note"`
}

// BudgetUpsellRequest mirrors model.BudgetUpsell on the wire.
type BudgetUpsellRequest struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Kind         string          `json:"type"`
	MonthlyDelta decimal.Decimal `json:"monthlyDelta"`
	OneTimeDelta decimal.Decimal `json:"oneTimeDelta"`
}

// BudgetItemRequest mirrors model.BudgetItem on the wire.
type BudgetItemRequest struct {
	ID        string          `json:"id"`
	Procedure string          `json:"procedure"`
	Benefit   string          `json:"benefit"`
	Entry     decimal.Decimal `json:"entry"`
	Qty       int             `json:"qty"`
	Total     decimal.Decimal `json:"total"`
	TotalCash decimal.Decimal `json:"totalCash"`
}

// CreateBudgetRequest drafts a treatment proposal.
type CreateBudgetRequest struct {
	PatientID        *string               `json:"patient_id,omitempty"`
	Type             string                `json:"type"`
	OrthoType        string                `json:"ortho_type"`
	Model            string                `json:"model"`
	MonthlyValue     decimal.Decimal       `json:"monthly_value"`
	Installments     int                   `json:"installments"`
	Total            decimal.Decimal       `json:"total"`
	CashValue        decimal.Decimal       `json:"cash_value"`
	Upsells          []BudgetUpsellRequest `json:"upsells,omitempty"`
	Items            []BudgetItemRequest   `json:"items,omitempty"`
	DueDay           *int                  `json:"due_day,omitempty"`
	IsCash           bool                  `json:"is_cash"`
	IsPlanComplement bool                  `json:"is_plan_complement"`
	Notes            string                `json:"notes"`
}

// QuoteBudgetRequest previews a budget's payment schedule.
type QuoteBudgetRequest struct {
	BudgetID  string `json:"budget_id"`
	StartDate string `json:"start_date"`
}

// SummaryRequest bounds the dashboard aggregation.
type SummaryRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ReceivableResponse is the external representation of a receivable.
type ReceivableResponse struct {
	ID                string          `json:"id"`
	PatientID         *string         `json:"patient_id,omitempty"`
	OriginType        string          `json:"origin_type"`
	OriginID          *string         `json:"origin_id,omitempty"`
	InstallmentNum    *int            `json:"installment_num,omitempty"`
	TotalInstallments *int            `json:"total_installments,omitempty"`
	DueDate           string          `json:"due_date"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ReceivableFromModel maps a domain receivable onto the wire shape.
func ReceivableFromModel(r model.Receivable) ReceivableResponse {
	resp := ReceivableResponse{
		ID:                r.ID.String(),
		OriginType:        string(r.OriginType),
		InstallmentNum:    r.InstallmentNum,
		TotalInstallments: r.TotalInstallments,
		DueDate:           r.DueDate.Format(DateLayout),
		Amount:            r.Amount,
		Status:            r.Status.String(),
		PaidAmount:        r.PaidAmount,
		PaidAt:            r.PaidAt,
		Description:       r.Description,
		CreatedAt:         r.CreatedAt,
	}
	if r.PatientID != nil {
		s := r.PatientID.String()
		resp.PatientID = &s
	}
	if r.OriginID != nil {
		s := r.OriginID.String()
		resp.OriginID = &s
	}
	return resp
}

// ReceivablesFromModel maps a slice.
func ReceivablesFromModel(items []model.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, len(items))
	for i, r := range items {
		out[i] = ReceivableFromModel(r)
	}
	return out
}

// PayableResponse is the external representation of a payable.
type PayableResponse struct {
	ID           string          `json:"id"`
	Supplier     string          `json:"supplier"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CostCenterID *string         `json:"cost_center_id,omitempty"`
	DueDate      string          `json:"due_date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

func PayableFromModel(p model.Payable) PayableResponse {
	resp := PayableResponse{
		ID:          p.ID.String(),
		Supplier:    p.Supplier,
		DueDate:     p.DueDate.Format(DateLayout),
		Amount:      p.Amount,
		Status:      p.Status.String(),
		PaidAt:      p.PaidAt,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	if p.CostCenterID != nil {
		s := p.CostCenterID.String()
		resp.CostCenterID = &s
	}
	return resp
}

func PayablesFromModel(items []model.Payable) []PayableResponse {
	out := make([]PayableResponse, len(items))
	for i, p := range items {
		out[i] = PayableFromModel(p)
	}
	return out
}

// EntryResponse is one rateio slice.
type EntryResponse struct {
	ID           string          `json:"id"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CostCenterID *string         `json:"cost_center_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransactionResponse is the external representation of a cash movement.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	PatientID     *string         `json:"patient_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
	Entries       []EntryResponse `json:"entries"`
	CreatedAt     time.Time       `json:"created_at"`
}

func TransactionFromModel(tx model.FinancialTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Date:          tx.Date.Format(DateLayout),
		Description:   tx.Description,
		PaymentMethod: string(tx.PaymentMethod),
		Entries:       make([]EntryResponse, len(tx.Entries)),
		CreatedAt:     tx.CreatedAt,
	}
	if tx.PatientID != nil {
		s := tx.PatientID.String()
		resp.PatientID = &s
	}
	for i, e := range tx.Entries {
		entry := EntryResponse{ID: e.ID.String(), Amount: e.Amount}
		if e.CategoryID != nil {
			s := e.CategoryID.String()
			entry.CategoryID = &s
		}
		if e.CostCenterID != nil {
			s := e.CostCenterID.String()
			entry.CostCenterID = &s
		}
		resp.Entries[i] = entry
	}
	return resp
}

func TransactionsFromModel(items []model.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(items))
	for i, tx := range items {
		out[i] = TransactionFromModel(tx)
	}
	return out
}

// InstallmentResponse is one row of a generated or previewed schedule.
type InstallmentResponse struct {
	Sequence    int             `json:"sequence"`
	DueDate     string          `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func InstallmentsFromModel(items []model.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, len(items))
	for i, inst := range items {
		out[i] = InstallmentResponse{
			Sequence:    inst.Sequence,
			DueDate:     inst.DueDate.Format(DateLayout),
			Amount:      inst.Amount,
			Description: inst.Description,
		}
	}
	return out
}

// OrthoContractResponse is the external representation of a contract.
type OrthoContractResponse struct {
	ID            string          `json:"id"`
	PatientID     string          `json:"patient_id"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	TotalMonths   int             `json:"total_months"`
	DueDay        int             `json:"due_day"`
	StartDate     string          `json:"start_date"`
	Status        string          `json:"status"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

func OrthoContractFromModel(c model.OrthoContract) OrthoContractResponse {
	return OrthoContractResponse{
		ID:            c.ID.String(),
		PatientID:     c.PatientID.String(),
		MonthlyAmount: c.MonthlyAmount,
		TotalMonths:   c.TotalMonths,
		DueDay:        c.DueDay,
		StartDate:     c.StartDate.Format(DateLayout),
		Status:        c.Status.String(),
		TotalValue:    c.TotalValue(),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
	}
}

func OrthoContractsFromModel(items []model.OrthoContract) []OrthoContractResponse {
	out := make([]OrthoContractResponse, len(items))
	for i, c := range items {
		out[i] = OrthoContractFromModel(c)
	}
	return out
}

// PatientResponse is the external representation of a patient.
type PatientResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	BirthDate *string   `json:"birth_date,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func PatientFromModel(p model.Patient) PatientResponse {
	resp := PatientResponse{
		ID:        p.ID.String(),
		Code:      p.Code,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		CPF:       p.CPF,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
	if p.BirthDate != nil {
		s := p.BirthDate.Format(DateLayout)
		resp.BirthDate = &s
	}
	return resp
}

func PatientsFromModel(items []model.Patient) []PatientResponse {
	out := make([]PatientResponse, len(items))
	for i, p := range items {
		out[i] = PatientFromModel(p)
	}
	return out
}

// ImportPatientsResponse reports a bulk import outcome.
type ImportPatientsResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// RenegotiateResponse reports the outcome of a renegotiation.
type RenegotiateResponse struct {
	RenegotiatedCount int                  `json:"renegotiated_count"`
	Outstanding       decimal.Decimal      `json:"outstanding"`
	NewPlan           []ReceivableResponse `json:"new_plan"`
}

// SettleReceivableResponse reports the state after a payment.
type SettleReceivableResponse struct {
	Receivable  ReceivableResponse  `json:"receivable"`
	Transaction TransactionResponse `json:"transaction"`
}

// SummaryResponse feeds the dashboard.
type SummaryResponse struct {
	TotalIn         decimal.Decimal `json:"total_in"`
	TotalOut        decimal.Decimal `json:"total_out"`
	Net             decimal.Decimal `json:"net"`
	OpenReceivables decimal.Decimal `json:"open_receivables"`
	OpenPayables    decimal.Decimal `json:"open_payables"`
	OverdueCount    int             `json:"overdue_count"`
}

// WaitlistEntryResponse is one kanban card.
type WaitlistEntryResponse struct {
	ID                      string    `json:"id"`
	PatientID               string    `json:"patient_id"`
	Specialty               string    `json:"specialty"`
	PreferredProfessionalID *string   `json:"preferred_professional_id,omitempty"`
	Priority                int       `json:"priority"`
	Status                  string    `json:"status"`
	Notes                   string    `json:"notes"`
	CreatedAt               time.Time `json:"created_at"`
}

func WaitlistEntryFromModel(e model.WaitlistEntry) WaitlistEntryResponse {
	resp := WaitlistEntryResponse{
		ID:        e.ID.String(),
		PatientID: e.PatientID.String(),
		Specialty: e.Specialty,
		Priority:  e.Priority,
		Status:    string(e.Status),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
	if e.PreferredProfessionalID != nil {
		s := e.PreferredProfessionalID.String()
		resp.PreferredProfessionalID = &s
	}
	return resp
}

func WaitlistEntriesFromModel(items []model.WaitlistEntry) []WaitlistEntryResponse {
	out := make([]WaitlistEntryResponse, len(items))
	for i, e := range items {
		out[i] = WaitlistEntryFromModel(e)
	}
	return out
}

// WaitlistEventResponse is one audit line of a card's column history.
type WaitlistEventResponse struct {
	ID          string    `json:"id"`
	FromStatus  *string   `json:"from_status,omitempty"`
	ToStatus    string    `json:"to_status"`
	ActorUserID *string   `json:"actor_user_id,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func WaitlistEventsFromModel(items []model.WaitlistEvent) []WaitlistEventResponse {
	out := make([]WaitlistEventResponse, len(items))
	for i, ev := range items {
		resp := WaitlistEventResponse{
			ID:        ev.ID.String(),
			ToStatus:  string(ev.ToStatus),
			Note:      ev.Note,
			CreatedAt: ev.CreatedAt,
		}
		if ev.FromStatus != nil {
			s := string(*ev.FromStatus)
			resp.FromStatus = &s
		}
		if ev.ActorUserID != nil {
			s := ev.ActorUserID.String()
			resp.ActorUserID = &s
		}
		out[i] = resp
	}
	return out
}

// BudgetResponse is the external representation of a budget.
type BudgetResponse struct {
	ID               string                `json:"id"`
	PatientID        *string               `json:"patient_id,omitempty"`
	Type             string                `json:"type"`
	OrthoType        string                `json:"ortho_type,omitempty"`
	Model            string                `json:"model"`
	MonthlyValue     decimal.Decimal       `json:"monthly_value"`
	Installments     int                   `json:"installments"`
	Total            decimal.Decimal       `json:"total"`
	CashValue        decimal.Decimal       `json:"cash_value"`
	Upsells          []model.BudgetUpsell  `json:"upsells,omitempty"`
	Items            []model.BudgetItem    `json:"items,omitempty"`
	DueDay           *int                  `json:"due_day,omitempty"`
	IsCash           bool                  `json:"is_cash"`
	IsPlanComplement bool                  `json:"is_plan_complement"`
	Notes            string                `json:"notes"`
	Status           string                `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
}

func BudgetFromModel(b model.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:               b.ID.String(),
		Type:             string(b.Type),
		OrthoType:        string(b.OrthoType),
		Model:            b.Model,
		MonthlyValue:     b.MonthlyValue,
		Installments:     b.Installments,
		Total:            b.Total,
		CashValue:        b.CashValue,
		Upsells:          b.Upsells,
		Items:            b.Items,
		DueDay:           b.DueDay,
		IsCash:           b.IsCash,
		IsPlanComplement: b.IsPlanComplement,
		Notes:            b.Notes,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
	if b.PatientID != nil {
		s := b.PatientID.String()
		resp.PatientID = &s
	}
	return resp
}

func BudgetsFromModel(items []model.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(items))
	for i, b := range items {
		out[i] = BudgetFromModel(b)
	}
	return out
}

// AppointmentResponse is one calendar slot.
type AppointmentResponse struct {
	ID             string    `json:"id"`
	PatientID      *string   `json:"patient_id,omitempty"`
	ProfessionalID string    `json:"professional_id"`
	Title          string    `json:"title"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func AppointmentFromModel(a model.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:             a.ID.String(),
		ProfessionalID: a.ProfessionalID.String(),
		Title:          a.Title,
		StartAt:        a.StartAt,
		EndAt:          a.EndAt,
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
	if a.PatientID != nil {
		s := a.PatientID.String()
		resp.PatientID = &s
	}
	return resp
}

func AppointmentsFromModel(items []model.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(items))
	for i, a := range items {
		out[i] = AppointmentFromModel(a)
	}
	return out
}

// ProfessionalResponse is one clinician.
type ProfessionalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func ProfessionalFromModel(p model.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Specialty: p.Specialty,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func ProfessionalsFromModel(items []model.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, len(items))
	for i, p := range items {
		out[i] = ProfessionalFromModel(p)
	}
	return out
}

// AnamnesisResponse is the patient questionnaire.
type AnamnesisResponse struct {
	ID                  string    `json:"id"`
	PatientID           string    `json:"patient_id"`
	HasAllergy          bool      `json:"has_allergy"`
	AllergyDetails      string    `json:"allergy_details"`
	HasHeartDisease     bool      `json:"has_heart_disease"`
	HeartDetails        string    `json:"heart_details"`
	HasDiabetes         bool      `json:"has_diabetes"`
	DiabetesDetails     string    `json:"diabetes_details"`
	HasHypertension     bool      `json:"has_hypertension"`
	HypertensionDetails string    `json:"hypertension_details"`
	HasBleedingDisorder bool      `json:"has_bleeding_disorder"`
	BleedingDetails     string    `json:"bleeding_details"`
	UsesMedication      bool      `json:"uses_medication"`
	MedicationDetails   string    `json:"medication_details"`
	IsPregnant          bool      `json:"is_pregnant"`
	IsSmoker            bool      `json:"is_smoker"`
	OtherConditions     string    `json:"other_conditions"`
	HasAlert            bool      `json:"has_alert"`
	AlertMessage        string    `json:"alert_message"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func AnamnesisFromModel(a model.Anamnesis) AnamnesisResponse {
	return AnamnesisResponse{
		ID:                  a.ID.String(),
		PatientID:           a.PatientID.String(),
		HasAllergy:          a.HasAllergy,
		AllergyDetails:      a.AllergyDetails,
		HasHeartDisease:     a.HasHeartDisease,
		HeartDetails:        a.HeartDetails,
		HasDiabetes:         a.HasDiabetes,
		DiabetesDetails:     a.DiabetesDetails,
		HasHypertension:     a.HasHypertension,
		HypertensionDetails: a.HypertensionDetails,
		HasBleedingDisorder: a.HasBleedingDisorder,
		BleedingDetails:     a.BleedingDetails,
		UsesMedication:      a.UsesMedication,
		MedicationDetails:   a.MedicationDetails,
		IsPregnant:          a.IsPregnant,
		IsSmoker:            a.IsSmoker,
		OtherConditions:     a.OtherConditions,
		HasAlert:            a.HasAlert,
		AlertMessage:        a.AlertMessage,
		UpdatedAt:           a.UpdatedAt,
	}
}

// CategoryResponse is one chart-of-accounts bucket.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func CategoryFromModel(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID.String(), Name: c.Name, Type: string(c.Type), CreatedAt: c.CreatedAt}
}

// CostCenterResponse is one cost center.
type CostCenterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func CostCenterFromModel(c model.CostCenter) CostCenterResponse {
	return CostCenterResponse{ID: c.ID.String(), Name: c.Name, CreatedAt: c.CreatedAt}
}
