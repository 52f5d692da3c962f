package shifttype

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/shift-scheduling/internal/transport"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

type ServiceAPI interface {
	GetShiftTypes() ([]ShiftType, error)
	SetShiftTypes(types []ShiftType) ([]ShiftType, error)
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

func (h *Handler) GetShiftTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.GetShiftTypes()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, types)
}

// SetShiftTypes accepts the full replacement catalogue as a JSON array,
// matching the replace-all contract of the configuration screen.
func (h *Handler) SetShiftTypes(w http.ResponseWriter, r *http.Request) {
	var types []ShiftType
	if err := json.NewDecoder(r.Body).Decode(&types); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body: expected an array of shift types")
		return
	}

	stored, err := h.Service.SetShiftTypes(types)
	if err != nil {
		h.Logger.Error("SetShiftTypes: service error", "error", err, "count", len(types))
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "scheduleTypes": stored})
}
