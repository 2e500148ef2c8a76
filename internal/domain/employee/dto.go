package employee

import (
	"context"

	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string   `json:"name"`
	HourlyWage *float64 `json:"hourlyWage"`
	Role       string   `json:"role,omitempty"`
	Color      string   `json:"color,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.HourlyWage != nil && *r.HourlyWage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyWage",
			Message: "hourlyWage must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name,omitempty"`
	HourlyWage *float64 `json:"hourlyWage,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Color      *string  `json:"color,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.HourlyWage != nil && *r.HourlyWage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyWage",
			Message: "hourlyWage must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeService manages the employee roster.
type EmployeeService interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
