package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/handler/http/response"
)

type TaskHandler interface {
	ListTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetDistribution(w http.ResponseWriter, r *http.Request)
	UpdateTaskStatus(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// ListTasks handles GET /tasks?employee_id=&status=
func (h *taskHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := getIntQueryParam(r, "employee_id", 0)
	if !ok {
		response.BadRequest(w, "invalid employee_id parameter", nil)
		return
	}

	filter := task.TaskFilter{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
	}

	result, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result)
}

// CreateTask handles POST /tasks
func (h *taskHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

// GetDistribution handles GET /tasks/distribution
func (h *taskHandlerImpl) GetDistribution(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.GetDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTaskStatus handles PATCH /tasks/{id}/status
func (h *taskHandlerImpl) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid task id", nil)
		return
	}

	var req task.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.taskService.UpdateTaskStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated successfully", result)
}

// CompleteTask handles POST /tasks/{id}/complete
func (h *taskHandlerImpl) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid task id", nil)
		return
	}

	var req task.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.taskService.CompleteTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task completed successfully", result)
}
