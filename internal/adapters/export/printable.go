package export

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
)

//go:embed printable.html.tmpl
var printableSource string

var printableTmpl = template.Must(template.New("printable").Funcs(template.FuncMap{
	"date":     func(t time.Time) string { return t.UTC().Format("January 2, 2006 15:04 MST") },
	"ordinal":  humanize.Ordinal,
	"yesno":    yesNo,
	"rank":     func(i int) int { return i + 1 },
	"riskText": riskText,
}).Parse(printableSource))

// PrintableReport is everything the print view shows.
type PrintableReport struct {
	Title         string
	GeneratedAt   time.Time
	Summary       scoring.RosterSummary
	Employees     []model.Employee
	KnowledgeRisk scoring.KnowledgeRisk
	Stability     scoring.Rating
	Continuity    scoring.Rating
	Resilience    int
	// AutoPrint opens the browser print dialog once the page has loaded.
	AutoPrint bool
}

// WritePrintable renders r as a standalone HTML page.
func WritePrintable(w io.Writer, r PrintableReport) error {
	if r.Title == "" {
		r.Title = "TalentIQ Workforce Report"
	}
	if err := printableTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render printable report: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func riskText(risk int) string {
	switch {
	case risk > 60:
		return "high"
	case risk > 40:
		return "medium"
	}
	return "low"
}
