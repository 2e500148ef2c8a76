package taskcategory

import "errors"

var (
	ErrTaskCategoryNotFound = errors.New("task category not found")
)
