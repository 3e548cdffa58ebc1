package leave

import (
	"context"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		Details:    req.Details,
		StartDate:  start,
		EndDate:    end,
		IsApproved: false,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, toLeaveResponse(l))
	}
	return resp, nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if current.IsApproved {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyApproved
	}

	approved, err := s.leaveRepo.Approve(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(approved), nil
}

func toLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  string(l.LeaveType),
		Details:    l.Details,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		IsApproved: l.IsApproved,
	}
}
