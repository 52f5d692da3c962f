package shift

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/shift-scheduling/internal/auth"
	"github.com/frahmantamala/shift-scheduling/internal/transport"
	"github.com/frahmantamala/shift-scheduling/internal/user"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

type ServiceAPI interface {
	ListShifts(start, end string) ([]*Shift, error)
	SaveShifts(dto *SaveShiftsDTO) error
	Week(employeeID string, ref time.Time) (*WeekResponse, error)
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

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")

	shifts, err := h.Service.ListShifts(start, end)
	if err != nil {
		h.Logger.Error("ListShifts: service error", "error", err, "start", start, "end", end)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, shifts)
}

func (h *Handler) SaveShifts(w http.ResponseWriter, r *http.Request) {
	var dto SaveShiftsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SaveShifts(&dto); err != nil {
		h.Logger.Error("SaveShifts: service error", "error", err, "count", len(dto.Shifts))
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "count": len(dto.Shifts)})
}

// GetWeek serves the employee self-service week view. Employees always see
// their own schedule; admins may ask for any employee via employeeId.
func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	employeeID := ""
	if current.Role == user.RoleAdmin {
		employeeID = r.URL.Query().Get("employeeId")
	} else if current.EmployeeID != nil {
		employeeID = *current.EmployeeID
	}
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "no employee linked to this account")
		return
	}

	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	week, err := h.Service.Week(employeeID, ref)
	if err != nil {
		h.Logger.Error("GetWeek: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, week)
}
