package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/employee"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, mobile_no, address, gender, department,
	position, employee_type, joining_date, base_salary, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.MobileNo, &emp.Address,
		&emp.Gender, &emp.Department, &emp.Position, &emp.EmployeeType,
		&emp.JoiningDate, &emp.BaseSalary, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.Repository. The uniqueness checks and the
// insert share one transaction.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	var created employee.Employee
	err := WithTransaction(ctx, e.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, e.db)

		var exists bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`,
			newEmployee.ID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check employee id: %w", err)
		}
		if exists {
			return employee.ErrEmployeeExists
		}

		err = q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
			newEmployee.Email,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check employee email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}

		query := `
			INSERT INTO employees (
				id, name, email, mobile_no, address, gender, department,
				position, employee_type, joining_date, base_salary
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING ` + employeeColumns

		created, err = scanEmployee(q.QueryRow(ctx, query,
			newEmployee.ID, newEmployee.Name, newEmployee.Email, newEmployee.MobileNo,
			newEmployee.Address, newEmployee.Gender, newEmployee.Department,
			newEmployee.Position, newEmployee.EmployeeType, newEmployee.JoiningDate,
			newEmployee.BaseSalary,
		))
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

// GetByName implements employee.Repository.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE name = $1 LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}
	return emp, nil
}

// List implements employee.Repository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.Repository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, mobile_no = $4, address = $5, gender = $6,
			department = $7, position = $8, employee_type = $9,
			joining_date = $10, base_salary = $11, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.MobileNo, emp.Address, emp.Gender,
		emp.Department, emp.Position, emp.EmployeeType, emp.JoiningDate,
		emp.BaseSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", emp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.Repository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Count implements employee.Repository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
