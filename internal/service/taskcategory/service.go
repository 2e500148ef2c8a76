package taskcategory

import (
	"context"

	"github.com/google/uuid"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

type taskCategoryServiceImpl struct {
	store *session.Store
}

func NewTaskCategoryService(store *session.Store) taskcategory.TaskCategoryService {
	return &taskCategoryServiceImpl{store: store}
}

// List implements taskcategory.TaskCategoryService.
func (s *taskCategoryServiceImpl) List(ctx context.Context) ([]taskcategory.TaskCategory, error) {
	return s.store.TaskCategories(), nil
}

// Create implements taskcategory.TaskCategoryService.
func (s *taskCategoryServiceImpl) Create(ctx context.Context, req taskcategory.CreateTaskCategoryRequest) (taskcategory.TaskCategory, error) {
	if err := req.Validate(); err != nil {
		return taskcategory.TaskCategory{}, err
	}

	created := taskcategory.TaskCategory{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Tasks: append([]string{}, req.Tasks...),
	}

	err := s.store.UpdateTaskCategories(func(categories []taskcategory.TaskCategory) ([]taskcategory.TaskCategory, error) {
		return append(append([]taskcategory.TaskCategory(nil), categories...), created), nil
	})
	if err != nil {
		return taskcategory.TaskCategory{}, err
	}
	return created, nil
}

// Update implements taskcategory.TaskCategoryService.
func (s *taskCategoryServiceImpl) Update(ctx context.Context, req taskcategory.UpdateTaskCategoryRequest) (taskcategory.TaskCategory, error) {
	if err := req.Validate(); err != nil {
		return taskcategory.TaskCategory{}, err
	}

	var updated taskcategory.TaskCategory
	err := s.store.UpdateTaskCategories(func(categories []taskcategory.TaskCategory) ([]taskcategory.TaskCategory, error) {
		library := append([]taskcategory.TaskCategory(nil), categories...)
		for i, c := range library {
			if c.ID != req.ID {
				continue
			}
			if req.Name != nil {
				c.Name = *req.Name
			}
			if req.Tasks != nil {
				c.Tasks = append([]string{}, (*req.Tasks)...)
			}
			library[i] = c
			updated = c
			return library, nil
		}
		return nil, taskcategory.ErrTaskCategoryNotFound
	})
	if err != nil {
		return taskcategory.TaskCategory{}, err
	}
	return updated, nil
}

// Delete implements taskcategory.TaskCategoryService. Tasks already
// instantiated from the template are copies and stay untouched.
func (s *taskCategoryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.UpdateTaskCategories(func(categories []taskcategory.TaskCategory) ([]taskcategory.TaskCategory, error) {
		for i, c := range categories {
			if c.ID == id {
				return append(append([]taskcategory.TaskCategory(nil), categories[:i]...), categories[i+1:]...), nil
			}
		}
		return nil, taskcategory.ErrTaskCategoryNotFound
	})
}

// Instantiate implements taskcategory.TaskCategoryService. Template
// descriptions are copied by value into fresh, not-completed tasks; the
// instances keep no link back to the template.
func (s *taskCategoryServiceImpl) Instantiate(ctx context.Context, id string) ([]shift.Task, error) {
	for _, c := range s.store.TaskCategories() {
		if c.ID != id {
			continue
		}
		tasks := make([]shift.Task, 0, len(c.Tasks))
		for _, description := range c.Tasks {
			tasks = append(tasks, shift.Task{
				ID:          uuid.NewString(),
				Description: description,
			})
		}
		return tasks, nil
	}
	return nil, taskcategory.ErrTaskCategoryNotFound
}
