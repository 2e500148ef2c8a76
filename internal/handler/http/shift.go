package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/shift"
	"github.com/campcrew/shiftboard-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
	Duplicate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MoveTask(w http.ResponseWriter, r *http.Request)
	ToggleTask(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Validate is the dry-run endpoint the editing form calls on every input
// change; it never blocks anything by itself.
func (h *shiftHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var draft shift.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.Validate(r.Context(), draft)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) Commit(w http.ResponseWriter, r *http.Request) {
	var draft shift.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	produced, _, err := h.shiftService.Commit(r.Context(), draft)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift committed successfully", produced)
}

func (h *shiftHandlerImpl) Duplicate(w http.ResponseWriter, r *http.Request) {
	var draft shift.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	// A duplicate always creates fresh records.
	draft.EditingShiftID = ""

	produced, err := h.shiftService.Duplicate(r.Context(), draft)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift duplicated successfully", produced)
}

func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

func (h *shiftHandlerImpl) MoveTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shift.MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.MoveTask(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	taskID := chi.URLParam(r, "taskID")

	var req shift.ToggleTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.ToggleTask(r.Context(), id, taskID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
