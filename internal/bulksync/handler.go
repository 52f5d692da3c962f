package bulksync

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/shift-scheduling/internal/schedule"
	"github.com/frahmantamala/shift-scheduling/internal/spreadsheet"
	"github.com/frahmantamala/shift-scheduling/internal/transport"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

// 10 MB cap on uploaded workbooks
const maxUploadBytes = 10 << 20

const templateFilename = "Plantilla_Horarios.xlsx"

type ServiceAPI interface {
	Preview(r io.Reader) (*spreadsheet.ReconciliationResult, error)
	Apply(result *spreadsheet.ReconciliationResult, confirmed bool) (*SyncReport, error)
	Template(year int, month time.Month) (*excelize.File, error)
	Export(year int, month time.Month) (*excelize.File, error)
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

// Preview accepts a multipart upload under the "file" field and returns the
// reconciliation result without applying it.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := h.Service.Preview(file)
	if err != nil {
		h.Logger.Error("Preview: reconciliation failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

type applyRequest struct {
	Result    *spreadsheet.ReconciliationResult `json:"result"`
	Confirmed bool                              `json:"confirmed"`
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Result == nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Service.Apply(req.Result, req.Confirmed)
	if err != nil {
		h.Logger.Error("Apply: sync failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	year, month := h.periodFromQuery(r)

	f, err := h.Service.Template(year, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.writeWorkbook(w, f, templateFilename)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	year, month := h.periodFromQuery(r)

	f, err := h.Service.Export(year, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("Horarios_%04d-%02d.xlsx", year, int(month))
	h.writeWorkbook(w, f, filename)
}

// periodFromQuery reads year and month, defaulting to the current work
// period's display month.
func (h *Handler) periodFromQuery(r *http.Request) (int, time.Month) {
	current := schedule.CurrentWorkPeriod(time.Now())
	year := current.DisplayMonth.Year()
	month := current.DisplayMonth.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 12 {
			month = time.Month(parsed)
		}
	}
	return year, month
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := spreadsheet.WriteWorkbook(f, w); err != nil {
		h.Logger.Error("failed to stream workbook", "error", err)
	}
}
