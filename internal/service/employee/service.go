package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/employee"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

type employeeServiceImpl struct {
	store *session.Store
}

func NewEmployeeService(store *session.Store) employee.EmployeeService {
	return &employeeServiceImpl{store: store}
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.store.Employees(), nil
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	wage := float64(employee.DefaultHourlyWage)
	if req.HourlyWage != nil && *req.HourlyWage > 0 {
		wage = *req.HourlyWage
	}

	created := employee.Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		HourlyWage: wage,
		Role:       req.Role,
		Color:      req.Color,
	}

	err := s.store.UpdateEmployees(func(employees []employee.Employee) ([]employee.Employee, error) {
		return append(append([]employee.Employee(nil), employees...), created), nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.store.UpdateEmployees(func(employees []employee.Employee) ([]employee.Employee, error) {
		roster := append([]employee.Employee(nil), employees...)
		for i, e := range roster {
			if e.ID != req.ID {
				continue
			}
			if req.Name != nil {
				e.Name = *req.Name
			}
			if req.HourlyWage != nil {
				e.HourlyWage = *req.HourlyWage
			}
			if req.Role != nil {
				e.Role = *req.Role
			}
			if req.Color != nil {
				e.Color = *req.Color
			}
			roster[i] = e
			updated = e
			return roster, nil
		}
		return nil, employee.ErrEmployeeNotFound
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeService. Deletion does not cascade
// to shifts; their employee references dangle and render as "unknown".
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.UpdateEmployees(func(employees []employee.Employee) ([]employee.Employee, error) {
		for i, e := range employees {
			if e.ID == id {
				return append(append([]employee.Employee(nil), employees[:i]...), employees[i+1:]...), nil
			}
		}
		return nil, employee.ErrEmployeeNotFound
	})
}
