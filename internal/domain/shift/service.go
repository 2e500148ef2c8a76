package shift

import "context"

// ShiftService is the write path for the shift collection. Commit and
// Duplicate return the records produced by the operation (one per
// selected employee), not the whole collection.
type ShiftService interface {
	List(ctx context.Context) ([]Shift, error)

	// Validate runs the conflict validator against the current
	// collection without committing anything.
	Validate(ctx context.Context, draft Draft) (ValidationResult, error)

	// Commit validates the draft and, when clean, fans it out into the
	// collection. A draft with blocking errors returns *ConflictError.
	Commit(ctx context.Context, draft Draft) ([]Shift, ValidationResult, error)

	// Duplicate clones a shift pattern with all-fresh identities and
	// every task reset to incomplete.
	Duplicate(ctx context.Context, draft Draft) ([]Shift, error)

	Delete(ctx context.Context, id string) error

	MoveTask(ctx context.Context, shiftID string, req MoveTaskRequest) (Shift, error)

	// ToggleTask flips a task's completion state, attributing the
	// completion to the acting employee.
	ToggleTask(ctx context.Context, shiftID, taskID string, req ToggleTaskRequest) (Shift, error)
}
