package schedule

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/shift-scheduling/internal/transport"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

type ServiceAPI interface {
	Grid(year int, month time.Month) (*GridResponse, error)
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

// GetGrid serves the admin schedule grid for a display month. Without query
// parameters it resolves the current work period, so opening the grid on the
// 27th already shows next month's period.
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	year, month, ok := displayMonthFromQuery(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	grid, err := h.Service.Grid(year, month)
	if err != nil {
		h.Logger.Error("GetGrid: service error", "error", err, "year", year, "month", int(month))
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, grid)
}

// GetCurrentPeriod resolves the work period for a reference date (today by
// default) so clients can initialize their navigation state.
func (h *Handler) GetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	period := CurrentWorkPeriod(ref)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"start":        period.Start.Format(dateLayout),
		"end":          period.End.Format(dateLayout),
		"displayMonth": period.DisplayMonth.Format("2006-01"),
		"label":        FormatWorkPeriod(period),
	})
}

func displayMonthFromQuery(r *http.Request) (int, time.Month, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		period := CurrentWorkPeriod(time.Now())
		return period.DisplayMonth.Year(), period.DisplayMonth.Month(), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
