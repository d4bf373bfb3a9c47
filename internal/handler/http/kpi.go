package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/kpi"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

type KPIHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	DeactivateTemplate(w http.ResponseWriter, r *http.Request)
	SubmitReview(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	ListReviewsByEmployee(w http.ResponseWriter, r *http.Request)
	RecalculateSummary(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type KPIHandlerImpl struct {
	kpiService kpi.KPIService
}

func NewKPIHandler(kpiService kpi.KPIService) KPIHandler {
	return &KPIHandlerImpl{kpiService: kpiService}
}

// CreateTemplate implements KPIHandler.
func (h *KPIHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tmpl, err := h.kpiService.CreateTemplate(r.Context(), req)
	if err != nil {
		slog.Error("CreateTemplate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created", tmpl)
}

// GetTemplate implements KPIHandler.
func (h *KPIHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.kpiService.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tmpl)
}

// ListTemplates implements KPIHandler.
func (h *KPIHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.kpiService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// DeactivateTemplate implements KPIHandler.
func (h *KPIHandlerImpl) DeactivateTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.kpiService.DeactivateTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeactivateTemplate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deactivated", nil)
}

// SubmitReview implements KPIHandler.
func (h *KPIHandlerImpl) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req kpi.SubmitReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	review, err := h.kpiService.SubmitReview(r.Context(), req, userIDFromRequest(r))
	if err != nil {
		slog.Error("SubmitReview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review submitted", review)
}

// GetReview implements KPIHandler.
func (h *KPIHandlerImpl) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.kpiService.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, review)
}

// ListReviewsByEmployee implements KPIHandler.
func (h *KPIHandlerImpl) ListReviewsByEmployee(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.kpiService.ListReviewsByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// RecalculateSummary implements KPIHandler.
func (h *KPIHandlerImpl) RecalculateSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.kpiService.RecalculateSummary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("RecalculateSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance summary recalculated", summary)
}

// GetSummary implements KPIHandler.
func (h *KPIHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.kpiService.GetSummary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
