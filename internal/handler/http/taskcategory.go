package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/taskcategory"
	"github.com/campcrew/shiftboard-backend-go/internal/handler/http/response"
)

type TaskCategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Instantiate(w http.ResponseWriter, r *http.Request)
}

type taskCategoryHandlerImpl struct {
	taskCategoryService taskcategory.TaskCategoryService
}

func NewTaskCategoryHandler(taskCategoryService taskcategory.TaskCategoryService) TaskCategoryHandler {
	return &taskCategoryHandlerImpl{
		taskCategoryService: taskCategoryService,
	}
}

func (h *taskCategoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskCategoryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taskCategoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req taskcategory.CreateTaskCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taskCategoryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task category created successfully", result)
}

func (h *taskCategoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req taskcategory.UpdateTaskCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.taskCategoryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taskCategoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskCategoryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task category deleted successfully", nil)
}

// Instantiate copies a template into fresh task instances for a draft.
func (h *taskCategoryHandlerImpl) Instantiate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.taskCategoryService.Instantiate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
