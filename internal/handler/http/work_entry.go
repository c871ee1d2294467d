package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/handler/http/response"
)

type WorkEntryHandler interface {
	ListWorkEntries(w http.ResponseWriter, r *http.Request)
	AddWorkEntry(w http.ResponseWriter, r *http.Request)
	GetHoursSummary(w http.ResponseWriter, r *http.Request)
	ApproveWorkEntry(w http.ResponseWriter, r *http.Request)
}

type workEntryHandlerImpl struct {
	workEntryService workentry.WorkEntryService
}

func NewWorkEntryHandler(workEntryService workentry.WorkEntryService) WorkEntryHandler {
	return &workEntryHandlerImpl{workEntryService: workEntryService}
}

// ListWorkEntries handles GET /work-entries?employee_id=
func (h *workEntryHandlerImpl) ListWorkEntries(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := getIntQueryParam(r, "employee_id", 0)
	if !ok || employeeID < 0 {
		response.BadRequest(w, "invalid employee_id parameter", nil)
		return
	}

	result, err := h.workEntryService.ListWorkEntries(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result)
}

// AddWorkEntry handles POST /work-entries
func (h *workEntryHandlerImpl) AddWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req workentry.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workEntryService.AddWorkEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work entry submitted successfully", result)
}

// GetHoursSummary handles GET /work-entries/summary
func (h *workEntryHandlerImpl) GetHoursSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.workEntryService.GetHoursSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApproveWorkEntry handles POST /work-entries/{id}/approve
func (h *workEntryHandlerImpl) ApproveWorkEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDParam(r)
	if !ok {
		response.BadRequest(w, "invalid work entry id", nil)
		return
	}

	result, err := h.workEntryService.ApproveWorkEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry approved", result)
}
