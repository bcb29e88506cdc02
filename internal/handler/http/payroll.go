package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hq/attendance-backend-go/internal/domain/payroll"
	"github.com/workline-hq/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	RunBatch(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetBreakdown implements PayrollHandler.
func (h *payrollHandlerImpl) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	result, err := h.payrollService.Reconcile(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RunBatch implements PayrollHandler.
func (h *payrollHandlerImpl) RunBatch(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.payrollService.ReconcileAll(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
