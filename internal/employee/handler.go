package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/shift-scheduling/internal/transport"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

type ServiceAPI interface {
	ListEmployees() ([]*Employee, error)
	GetEmployee(id string) (*Employee, error)
	CreateEmployee(dto *CreateEmployeeDTO) (*Employee, error)
	UpdateEmployee(id string, dto *UpdateEmployeeDTO) (*Employee, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees()
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Service.GetEmployee(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.CreateEmployee(&dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "code", dto.Code)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEmployee: employee created", "employee_id", emp.ID, "code", emp.Code)
	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdateEmployee(id, &dto)
	if err != nil {
		h.Logger.Error("UpdateEmployee: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}
