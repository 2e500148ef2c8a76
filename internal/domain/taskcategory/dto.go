package taskcategory

import (
	"context"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/validator"
)

type CreateTaskCategoryRequest struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

func (r *CreateTaskCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	for _, task := range r.Tasks {
		if validator.IsEmpty(task) {
			errs = append(errs, validator.ValidationError{
				Field:   "tasks",
				Message: "task descriptions must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskCategoryRequest struct {
	ID    string    `json:"id"`
	Name  *string   `json:"name,omitempty"`
	Tasks *[]string `json:"tasks,omitempty"`
}

func (r *UpdateTaskCategoryRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TaskCategoryService manages the template library and instantiates
// fresh tasks from templates.
type TaskCategoryService interface {
	List(ctx context.Context) ([]TaskCategory, error)
	Create(ctx context.Context, req CreateTaskCategoryRequest) (TaskCategory, error)
	Update(ctx context.Context, req UpdateTaskCategoryRequest) (TaskCategory, error)
	Delete(ctx context.Context, id string) error

	// Instantiate copies the template's descriptions into fresh,
	// not-completed tasks with new identities.
	Instantiate(ctx context.Context, id string) ([]shift.Task, error)
}
