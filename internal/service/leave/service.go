package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Reject leaves for unknown employees up front.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	record := leave.Leave{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       leave.LeaveType(req.Type),
		Reason:     req.Reason,
		// Leaves entered through the admin console are approved at entry.
		Status: leave.StatusApproved,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(created), nil
}

func (s *LeaveServiceImpl) ListForMonth(ctx context.Context, year, month int) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListForMonth(ctx, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return mapLeavesToResponses(leaves), nil
}

func (s *LeaveServiceImpl) ListForYear(ctx context.Context, year int) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListForYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return mapLeavesToResponses(leaves), nil
}

func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string, year *int) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListForEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return mapLeavesToResponses(leaves), nil
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

func mapLeaveToResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date.Format("2006-01-02"),
		Type:       string(l.Type),
		Reason:     l.Reason,
		Status:     string(l.Status),
	}
}

func mapLeavesToResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapLeaveToResponse(l))
	}
	return responses
}
