package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/payroll"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ProcessMonth(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func userIDFromRequest(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

// ProcessMonth implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessMonth(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessMonthRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.ProcessMonth(r.Context(), req, userIDFromRequest(r))
	if err != nil {
		slog.Error("Payroll processing service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run processed", result)
}

// UpdateStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := h.payrollService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req, userIDFromRequest(r))
	if err != nil {
		slog.Error("Payroll status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.payrollService.ListRuns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// ExportCSV implements PayrollHandler. Streams the run as a CSV attachment
// rather than the usual JSON envelope.
func (h *PayrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.payrollService.ExportCSV(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Payroll export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
