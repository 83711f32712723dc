package http

import (
	"net/http"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/payroll"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Monthly implements PayrollHandler.
func (p *PayrollHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	results, err := p.payrollService.MonthlyPayroll(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Employee implements PayrollHandler.
func (p *PayrollHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	result, err := p.payrollService.EmployeePayroll(r.Context(), id, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
