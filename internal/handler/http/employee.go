package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	GetScorecard(w http.ResponseWriter, r *http.Request)
	GetAttendanceRate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// ListEmployees handles GET /employees?q=&department=&tier=
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Query:      r.URL.Query().Get("q"),
		Department: r.URL.Query().Get("department"),
		Tier:       r.URL.Query().Get("tier"),
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result)
}

// ListDepartments handles GET /employees/departments
func (h *employeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee handles GET /employees/{id}
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee handles POST /employees
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee handles PUT /employees/{id}
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// GetScorecard handles GET /employees/{id}/scorecard
func (h *employeeHandlerImpl) GetScorecard(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	result, err := h.employeeService.GetScorecard(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceRate handles GET /employees/{id}/attendance-rate
func (h *employeeHandlerImpl) GetAttendanceRate(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid employee id", nil)
		return
	}

	result, err := h.attendanceService.GetAttendanceRate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
