package master

import (
	"context"
	"time"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/master"
)

type MasterServiceImpl struct {
	master.BranchRepository
	master.DepartmentRepository
	master.JobRoleRepository
}

func NewMasterService(
	branchRepo master.BranchRepository,
	departmentRepo master.DepartmentRepository,
	jobRoleRepo master.JobRoleRepository,
) master.MasterService {
	return &MasterServiceImpl{
		BranchRepository:     branchRepo,
		DepartmentRepository: departmentRepo,
		JobRoleRepository:    jobRoleRepo,
	}
}

// CreateBranch implements master.MasterService.
func (s *MasterServiceImpl) CreateBranch(ctx context.Context, req master.CreateBranchRequest) (master.Branch, error) {
	if err := req.Validate(); err != nil {
		return master.Branch{}, err
	}

	return s.BranchRepository.Create(ctx, master.Branch{
		Name:     req.Name,
		Location: req.Location,
	})
}

// ListBranches implements master.MasterService.
func (s *MasterServiceImpl) ListBranches(ctx context.Context) ([]master.Branch, error) {
	return s.BranchRepository.List(ctx)
}

// CreateDepartment implements master.MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req master.CreateDepartmentRequest) (master.Department, error) {
	if err := req.Validate(); err != nil {
		return master.Department{}, err
	}

	return s.DepartmentRepository.Create(ctx, master.Department{
		Name:        req.Name,
		Description: req.Description,
	})
}

// ListDepartments implements master.MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]master.Department, error) {
	return s.DepartmentRepository.List(ctx)
}

// CreateJobRole implements master.MasterService.
func (s *MasterServiceImpl) CreateJobRole(ctx context.Context, req master.CreateJobRoleRequest) (master.JobRoleResponse, error) {
	if err := req.Validate(); err != nil {
		return master.JobRoleResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return master.JobRoleResponse{}, err
	}

	role := master.JobRole{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		WorkPattern:  master.WorkPatternMonFri,
	}
	if req.WorkPattern != "" {
		role.WorkPattern = master.WorkPattern(req.WorkPattern)
	}
	if req.ShiftStart != nil {
		t, _ := master.ParseClock(*req.ShiftStart)
		role.ShiftStart = &t
	}
	if req.ShiftEnd != nil {
		t, _ := master.ParseClock(*req.ShiftEnd)
		role.ShiftEnd = &t
	}

	created, err := s.JobRoleRepository.Create(ctx, role)
	if err != nil {
		return master.JobRoleResponse{}, err
	}

	return toJobRoleResponse(created), nil
}

// GetJobRole implements master.MasterService.
func (s *MasterServiceImpl) GetJobRole(ctx context.Context, id string) (master.JobRoleResponse, error) {
	role, err := s.JobRoleRepository.GetByID(ctx, id)
	if err != nil {
		return master.JobRoleResponse{}, err
	}
	return toJobRoleResponse(role), nil
}

// ListJobRoles implements master.MasterService.
func (s *MasterServiceImpl) ListJobRoles(ctx context.Context) ([]master.JobRoleResponse, error) {
	roles, err := s.JobRoleRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.JobRoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, toJobRoleResponse(role))
	}
	return responses, nil
}

// UpsertSalaryStructure implements master.MasterService.
func (s *MasterServiceImpl) UpsertSalaryStructure(ctx context.Context, req master.UpsertSalaryStructureRequest) (master.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return master.SalaryStructureResponse{}, err
	}

	if _, err := s.JobRoleRepository.GetByID(ctx, req.JobRoleID); err != nil {
		return master.SalaryStructureResponse{}, err
	}

	structure, err := s.JobRoleRepository.UpsertSalaryStructure(ctx, master.SalaryStructure{
		JobRoleID:           req.JobRoleID,
		BasicSalary:         req.BasicSalary,
		HousingAllowance:    req.HousingAllowance,
		TransportAllowance:  req.TransportAllowance,
		MedicalAllowance:    req.MedicalAllowance,
		UtilityAllowance:    req.UtilityAllowance,
		OtherAllowances:     req.OtherAllowances,
		LateDeductionRate:   req.LateDeductionRate,
		AbsentDeductionRate: req.AbsentDeductionRate,
	})
	if err != nil {
		return master.SalaryStructureResponse{}, err
	}

	return toSalaryStructureResponse(structure), nil
}

// GetSalaryStructure implements master.MasterService.
func (s *MasterServiceImpl) GetSalaryStructure(ctx context.Context, jobRoleID string) (master.SalaryStructureResponse, error) {
	structure, err := s.JobRoleRepository.GetSalaryStructure(ctx, jobRoleID)
	if err != nil {
		return master.SalaryStructureResponse{}, err
	}
	return toSalaryStructureResponse(structure), nil
}

func toJobRoleResponse(role master.JobRole) master.JobRoleResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("15:04")
		return &s
	}

	return master.JobRoleResponse{
		ID:             role.ID,
		Name:           role.Name,
		Description:    role.Description,
		DepartmentID:   role.DepartmentID,
		DepartmentName: role.DepartmentName,
		ShiftStart:     format(role.ShiftStart),
		ShiftEnd:       format(role.ShiftEnd),
		WorkPattern:    string(role.WorkPattern),
	}
}

func toSalaryStructureResponse(s master.SalaryStructure) master.SalaryStructureResponse {
	return master.SalaryStructureResponse{
		ID:                  s.ID,
		JobRoleID:           s.JobRoleID,
		BasicSalary:         s.BasicSalary,
		HousingAllowance:    s.HousingAllowance,
		TransportAllowance:  s.TransportAllowance,
		MedicalAllowance:    s.MedicalAllowance,
		UtilityAllowance:    s.UtilityAllowance,
		OtherAllowances:     s.OtherAllowances,
		LateDeductionRate:   s.LateDeductionRate,
		AbsentDeductionRate: s.AbsentDeductionRate,
		HourlyRate:          s.HourlyRate().Round(4),
	}
}
