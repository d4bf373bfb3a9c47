package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/attendance"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListUploads(w http.ResponseWriter, r *http.Request)
	DeleteUpload(w http.ResponseWriter, r *http.Request)
	ManualEntry(w http.ResponseWriter, r *http.Request)
	ProcessMonthly(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	ListDisciplinaryActions(w http.ResponseWriter, r *http.Request)
	QueryLetter(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upload implements AttendanceHandler. Multipart form fields: month,
// branch_id, file.
func (h *AttendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "An attendance file is required in the 'file' field", nil)
		return
	}
	defer file.Close()

	req := attendance.ProcessUploadRequest{
		Month:      r.FormValue("month"),
		BranchID:   r.FormValue("branch_id"),
		File:       file,
		FileHeader: header,
	}

	result, err := h.attendanceService.ProcessUpload(r.Context(), req)
	if err != nil {
		slog.Error("Attendance upload service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance file processed", result)
}

// ListUploads implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.attendanceService.ListUploads(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, uploads)
}

// DeleteUpload implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteUpload(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Upload delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Upload deleted", nil)
}

// ManualEntry implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ManualEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.attendanceService.ManualEntry(r.Context(), req)
	if err != nil {
		slog.Error("Manual entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}

// ProcessMonthly implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ProcessMonthly(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessMonthlyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ProcessMonthly(r.Context(), req)
	if err != nil {
		slog.Error("Monthly processing service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly attendance processed", result)
}

// GetMonthlySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	summary, err := h.attendanceService.GetMonthlySummary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ListDisciplinaryActions implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListDisciplinaryActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.attendanceService.ListDisciplinaryActions(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, actions)
}

// QueryLetter implements AttendanceHandler.
func (h *AttendanceHandlerImpl) QueryLetter(w http.ResponseWriter, r *http.Request) {
	var req attendance.QueryLetterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	letter, err := h.attendanceService.GenerateQueryLetter(r.Context(), req)
	if err != nil {
		slog.Error("Query letter service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, letter)
}
