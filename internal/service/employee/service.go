package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
)

const employeeCodePrefix = "VAE-"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	master.DepartmentRepository
	master.JobRoleRepository
	auditService audit.AuditService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo master.DepartmentRepository,
	jobRoleRepo master.JobRoleRepository,
	auditService audit.AuditService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		JobRoleRepository:    jobRoleRepo,
		auditService:         auditService,
	}
}

func actorFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}

// nextEmployeeCode increments the numeric suffix of the latest assigned code.
func (s *EmployeeServiceImpl) nextEmployeeCode(ctx context.Context) (string, error) {
	last, err := s.EmployeeRepository.LastEmployeeCode(ctx)
	if err != nil {
		return "", err
	}
	if last == "" {
		return fmt.Sprintf("%s%04d", employeeCodePrefix, 1), nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(last, employeeCodePrefix))
	if err != nil {
		return "", fmt.Errorf("malformed employee code %q: %w", last, err)
	}

	return fmt.Sprintf("%s%04d", employeeCodePrefix, n+1), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.JobRoleID != nil {
		if _, err := s.JobRoleRepository.GetByID(ctx, *req.JobRoleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	code, err := s.nextEmployeeCode(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		EmployeeCode:     code,
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            req.Phone,
		Location:         req.Location,
		DepartmentID:     req.DepartmentID,
		JobRoleID:        req.JobRoleID,
		JobTitle:         req.JobTitle,
		ManagerID:        req.ManagerID,
		EmploymentStatus: employee.StatusActive,
		IsActive:         true,
	}
	if req.DateJoined != nil {
		if t, err := time.Parse("2006-01-02", *req.DateJoined); err == nil {
			e.DateJoined = &t
		}
	}
	if req.ProbationEndDate != nil {
		if t, err := time.Parse("2006-01-02", *req.ProbationEndDate); err == nil {
			e.ProbationEndDate = &t
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, actorFromContext(ctx), audit.ActionCreate, "employee", &created.ID,
		fmt.Sprintf("created %s (%s)", created.FullName, created.EmployeeCode))

	return toResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.Location != nil {
		e.Location = req.Location
	}
	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		e.DepartmentID = *req.DepartmentID
	}
	if req.JobRoleID != nil {
		if _, err := s.JobRoleRepository.GetByID(ctx, *req.JobRoleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		e.JobRoleID = req.JobRoleID
	}
	if req.JobTitle != nil {
		e.JobTitle = *req.JobTitle
	}
	if req.ManagerID != nil {
		e.ManagerID = req.ManagerID
	}
	if req.EmploymentStatus != nil {
		e.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
		// Leaving active status also clears the active flag
		if e.EmploymentStatus != employee.StatusActive {
			e.IsActive = false
		}
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.EmployeeRepository.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, e.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, actorFromContext(ctx), audit.ActionUpdate, "employee", &updated.ID,
		fmt.Sprintf("updated %s", updated.EmployeeCode))

	return toResponse(updated), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// csvColumn finds a header index by exact normalized match.
func csvColumn(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// ImportCSV implements employee.EmployeeService. Expected columns:
// full_name, email, and optionally employee_code, phone, location,
// department, job_role, job_title, date_joined. Unknown departments are
// created on the fly; rows that fail are reported but do not stop the import.
func (s *EmployeeServiceImpl) ImportCSV(ctx context.Context, req employee.ImportCSVRequest) (employee.ImportCSVResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ImportCSVResponse{}, err
	}

	reader := csv.NewReader(req.File)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return employee.ImportCSVResponse{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	nameIdx := csvColumn(header, "full_name")
	emailIdx := csvColumn(header, "email")
	if nameIdx == -1 || emailIdx == -1 {
		return employee.ImportCSVResponse{}, fmt.Errorf("csv must have full_name and email columns")
	}
	codeIdx := csvColumn(header, "employee_code")
	phoneIdx := csvColumn(header, "phone")
	locationIdx := csvColumn(header, "location")
	departmentIdx := csvColumn(header, "department")
	jobRoleIdx := csvColumn(header, "job_role")
	jobTitleIdx := csvColumn(header, "job_title")
	dateJoinedIdx := csvColumn(header, "date_joined")

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	resp := employee.ImportCSVResponse{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if err := s.importRow(ctx, row, cell, nameIdx, emailIdx, codeIdx, phoneIdx,
			locationIdx, departmentIdx, jobRoleIdx, jobTitleIdx, dateJoinedIdx); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		resp.Imported++
	}

	s.auditService.Record(ctx, actorFromContext(ctx), audit.ActionUpload, "employee", nil,
		fmt.Sprintf("csv import: %d rows imported, %d failed", resp.Imported, len(resp.Errors)))

	return resp, nil
}

func (s *EmployeeServiceImpl) importRow(
	ctx context.Context,
	row []string,
	cell func([]string, int) string,
	nameIdx, emailIdx, codeIdx, phoneIdx, locationIdx, departmentIdx, jobRoleIdx, jobTitleIdx, dateJoinedIdx int,
) error {
	fullName := cell(row, nameIdx)
	email := strings.ToLower(cell(row, emailIdx))
	if fullName == "" || email == "" {
		return errors.New("full_name and email are required")
	}

	departmentName := cell(row, departmentIdx)
	if departmentName == "" {
		departmentName = "General"
	}
	dept, err := s.DepartmentRepository.GetOrCreateByName(ctx, departmentName)
	if err != nil {
		return err
	}

	var jobRoleID *string
	if name := cell(row, jobRoleIdx); name != "" {
		role, err := s.JobRoleRepository.GetByName(ctx, name)
		if err != nil {
			if !errors.Is(err, master.ErrJobRoleNotFound) {
				return err
			}
		} else {
			jobRoleID = &role.ID
		}
	}

	e := employee.Employee{
		EmployeeCode:     cell(row, codeIdx),
		FullName:         fullName,
		Email:            email,
		DepartmentID:     dept.ID,
		JobRoleID:        jobRoleID,
		JobTitle:         cell(row, jobTitleIdx),
		EmploymentStatus: employee.StatusActive,
		IsActive:         true,
	}
	if phone := cell(row, phoneIdx); phone != "" {
		e.Phone = &phone
	}
	if location := cell(row, locationIdx); location != "" {
		e.Location = &location
	}
	if dj := cell(row, dateJoinedIdx); dj != "" {
		if t, err := time.Parse("2006-01-02", dj); err == nil {
			e.DateJoined = &t
		}
	}

	if e.EmployeeCode == "" {
		code, err := s.nextEmployeeCode(ctx)
		if err != nil {
			return err
		}
		e.EmployeeCode = code
		_, err = s.EmployeeRepository.Create(ctx, e)
		return err
	}

	_, _, err = s.EmployeeRepository.UpsertByCode(ctx, e)
	return err
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Email:            e.Email,
		Phone:            e.Phone,
		Location:         e.Location,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   e.DepartmentName,
		JobRoleID:        e.JobRoleID,
		JobRoleName:      e.JobRoleName,
		JobTitle:         e.JobTitle,
		ManagerID:        e.ManagerID,
		EmploymentStatus: string(e.EmploymentStatus),
		IsActive:         e.IsActive,
	}
	if e.DateJoined != nil {
		dj := e.DateJoined.Format("2006-01-02")
		resp.DateJoined = &dj
	}
	return resp
}
