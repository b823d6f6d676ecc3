package rest

import (
	"net/http"

	"github.com/dentara/dentara/pkg/auth"
)

// Router assembles the API surface. Health and metrics are open; every
// /api/v1 route sits behind token validation and the rate limiter.
type Router struct {
	Health    *HealthHandler
	Financial *FinancialHandler
	Clinic    *ClinicHandler
	JWT       *auth.JWTService
	RateLimit *RateLimiter
	Metrics   http.Handler
}

func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()

	// Deleting financial records and editing the chart of accounts is
	// restricted to management roles.
	managed := func(h http.HandlerFunc) http.Handler {
		return auth.RequireRole(h, auth.RoleOwner, auth.RoleAdmin, auth.RoleManager)
	}

	api.HandleFunc("POST /receivables", rt.Financial.CreateReceivable)
	api.HandleFunc("GET /receivables", rt.Financial.ListReceivables)
	api.Handle("DELETE /receivables/{id}", managed(rt.Financial.DeleteReceivable))
	api.HandleFunc("POST /receivables/plan", rt.Financial.CreateInstallmentPlan)
	api.HandleFunc("POST /receivables/settle", rt.Financial.SettleReceivable)
	api.HandleFunc("POST /receivables/renegotiate", rt.Financial.Renegotiate)

	api.HandleFunc("POST /payables", rt.Financial.CreatePayable)
	api.HandleFunc("GET /payables", rt.Financial.ListPayables)
	api.HandleFunc("POST /payables/settle", rt.Financial.SettlePayable)
	api.Handle("DELETE /payables/{id}", managed(rt.Financial.DeletePayable))

	api.HandleFunc("POST /transactions", rt.Financial.CreateTransaction)
	api.HandleFunc("GET /transactions", rt.Financial.ListTransactions)
	api.Handle("DELETE /transactions/{id}", managed(rt.Financial.DeleteTransaction))

	api.HandleFunc("POST /contracts", rt.Financial.CreateContract)
	api.HandleFunc("GET /contracts", rt.Financial.ListContracts)
	api.HandleFunc("GET /contracts/{id}/receivables", rt.Financial.ContractReceivables)
	api.HandleFunc("POST /contracts/{id}/cancel", rt.Financial.CancelContract)

	api.HandleFunc("GET /summary", rt.Financial.Summary)

	api.Handle("POST /categories", managed(rt.Financial.CreateCategory))
	api.HandleFunc("GET /categories", rt.Financial.ListCategories)
	api.Handle("DELETE /categories/{id}", managed(rt.Financial.DeleteCategory))
	api.Handle("POST /cost-centers", managed(rt.Financial.CreateCostCenter))
	api.HandleFunc("GET /cost-centers", rt.Financial.ListCostCenters)
	api.Handle("DELETE /cost-centers/{id}", managed(rt.Financial.DeleteCostCenter))

	api.HandleFunc("POST /patients", rt.Clinic.CreatePatient)
	api.HandleFunc("GET /patients", rt.Clinic.SearchPatients)
	api.HandleFunc("GET /patients/{id}", rt.Clinic.GetPatient)
	api.HandleFunc("PUT /patients/{id}", rt.Clinic.UpdatePatient)
	api.HandleFunc("DELETE /patients/{id}", rt.Clinic.DeletePatient)
	api.HandleFunc("POST /patients/import", rt.Clinic.ImportPatients)
	api.HandleFunc("PUT /patients/{id}/anamnesis", rt.Clinic.UpsertAnamnesis)
	api.HandleFunc("GET /patients/{id}/anamnesis", rt.Clinic.GetAnamnesis)

	api.HandleFunc("POST /professionals", rt.Clinic.CreateProfessional)
	api.HandleFunc("GET /professionals", rt.Clinic.ListProfessionals)
	api.HandleFunc("PUT /professionals/{id}", rt.Clinic.UpdateProfessional)
	api.HandleFunc("DELETE /professionals/{id}", rt.Clinic.DeleteProfessional)

	api.HandleFunc("POST /appointments", rt.Clinic.CreateAppointment)
	api.HandleFunc("GET /appointments", rt.Clinic.ListAppointments)
	api.HandleFunc("PUT /appointments/{id}", rt.Clinic.UpdateAppointment)
	api.HandleFunc("DELETE /appointments/{id}", rt.Clinic.DeleteAppointment)

	api.HandleFunc("POST /waitlist", rt.Clinic.CreateWaitlistEntry)
	api.HandleFunc("GET /waitlist", rt.Clinic.ListWaitlist)
	api.HandleFunc("POST /waitlist/move", rt.Clinic.MoveWaitlistEntry)
	api.HandleFunc("GET /waitlist/{id}/events", rt.Clinic.ListWaitlistEvents)
	api.HandleFunc("DELETE /waitlist/{id}", rt.Clinic.DeleteWaitlistEntry)

	api.HandleFunc("POST /budgets", rt.Clinic.CreateBudget)
	api.HandleFunc("GET /budgets", rt.Clinic.ListBudgets)
	api.HandleFunc("POST /budgets/{id}/status", rt.Clinic.SetBudgetStatus)
	api.HandleFunc("POST /budgets/quote", rt.Clinic.QuoteBudget)
	api.HandleFunc("DELETE /budgets/{id}", rt.Clinic.DeleteBudget)

	protected := auth.Middleware(rt.JWT)(rt.RateLimit.Middleware(api))

	root := http.NewServeMux()
	root.HandleFunc("GET /health/live", rt.Health.Liveness)
	root.HandleFunc("GET /health/ready", rt.Health.Readiness)
	if rt.Metrics != nil {
		root.Handle("GET /metrics", rt.Metrics)
	}
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", protected))

	return root
}
