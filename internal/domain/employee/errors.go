package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("an employee with this ID already exists")
	ErrEmailExists      = errors.New("an employee with this email already exists")
)
