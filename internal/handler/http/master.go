package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateJobRole(w http.ResponseWriter, r *http.Request)
	GetJobRole(w http.ResponseWriter, r *http.Request)
	ListJobRoles(w http.ResponseWriter, r *http.Request)
	UpsertSalaryStructure(w http.ResponseWriter, r *http.Request)
	GetSalaryStructure(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateBranch implements MasterHandler.
func (h *MasterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req master.CreateBranchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	branch, err := h.masterService.CreateBranch(r.Context(), req)
	if err != nil {
		slog.Error("CreateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created", branch)
}

// ListBranches implements MasterHandler.
func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.masterService.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branches)
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req master.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	dept, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", dept)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// CreateJobRole implements MasterHandler.
func (h *MasterHandlerImpl) CreateJobRole(w http.ResponseWriter, r *http.Request) {
	var req master.CreateJobRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	role, err := h.masterService.CreateJobRole(r.Context(), req)
	if err != nil {
		slog.Error("CreateJobRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job role created", role)
}

// GetJobRole implements MasterHandler.
func (h *MasterHandlerImpl) GetJobRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.masterService.GetJobRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, role)
}

// ListJobRoles implements MasterHandler.
func (h *MasterHandlerImpl) ListJobRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.masterService.ListJobRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roles)
}

// UpsertSalaryStructure implements MasterHandler.
func (h *MasterHandlerImpl) UpsertSalaryStructure(w http.ResponseWriter, r *http.Request) {
	var req master.UpsertSalaryStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.JobRoleID = chi.URLParam(r, "id")

	structure, err := h.masterService.UpsertSalaryStructure(r.Context(), req)
	if err != nil {
		slog.Error("UpsertSalaryStructure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure)
}

// GetSalaryStructure implements MasterHandler.
func (h *MasterHandlerImpl) GetSalaryStructure(w http.ResponseWriter, r *http.Request) {
	structure, err := h.masterService.GetSalaryStructure(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure)
}
