package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/okian/talentiq/internal/adapters/export"
)

// ExportHandler handles download and print requests.
type ExportHandler struct {
	deps ReportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ReportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleCSV handles GET /export/csv requests.
func (h *ExportHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	name, err := h.deps.ExportCSV(r.Context(), &buf)
	if err != nil {
		writeServiceError(w, r, "api.export_csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandlePrint handles GET /export/print requests. The page opens the print
// dialog on load unless print=false is passed.
func (h *ExportHandler) HandlePrint(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_print"
	autoPrint := true
	if raw := r.URL.Query().Get("print"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		autoPrint = v
	}

	report := h.deps.PrintableReport(r.Context())
	report.AutoPrint = autoPrint
	var buf bytes.Buffer
	if err := export.WritePrintable(&buf, report); err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
