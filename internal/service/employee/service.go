package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)
	emp := employee.Employee{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		MobileNo:     req.MobileNo,
		Address:      req.Address,
		Gender:       employee.Gender(req.Gender),
		Department:   req.Department,
		Position:     req.Position,
		EmployeeType: employee.EmployeeType(req.EmployeeType),
		JoiningDate:  joiningDate,
		BaseSalary:   req.BaseSalary,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.MobileNo != nil {
		emp.MobileNo = *req.MobileNo
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.EmployeeType != nil {
		emp.EmployeeType = employee.EmployeeType(*req.EmployeeType)
	}
	if req.JoiningDate != nil {
		joiningDate, _ := time.Parse("2006-01-02", *req.JoiningDate)
		emp.JoiningDate = joiningDate
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = req.BaseSalary
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	joiningDate := ""
	if !emp.JoiningDate.IsZero() {
		joiningDate = emp.JoiningDate.Format("2006-01-02")
	}
	return employee.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Email:        emp.Email,
		MobileNo:     emp.MobileNo,
		Address:      emp.Address,
		Gender:       string(emp.Gender),
		Department:   emp.Department,
		Position:     emp.Position,
		EmployeeType: string(emp.EmployeeType),
		JoiningDate:  joiningDate,
		BaseSalary:   emp.BaseSalary,
	}
}
