// Package export renders roster snapshots as CSV files and printable HTML reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/okian/talentiq/internal/domain/model"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"ID", "Name", "Role", "Department", "Attrition Risk", "Criticality", "Key Person", "Skills"}

// FileName returns talentiq-export-YYYY-MM-DD.<ext> for the UTC date of t.
func FileName(t time.Time, ext string) string {
	return fmt.Sprintf("talentiq-export-%s.%s", t.UTC().Format(time.DateOnly), ext)
}

// WriteCSV writes one row per employee in roster order.
func WriteCSV(w io.Writer, employees []model.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, e := range employees {
		if err := cw.Write(csvRow(e)); err != nil {
			return fmt.Errorf("write CSV row %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

func csvRow(e model.Employee) []string {
	return []string{
		e.ID,
		e.Name,
		e.Role,
		e.Department,
		strconv.Itoa(e.AttritionRisk),
		string(e.Criticality),
		yesNo(e.IsKeyPerson),
		strings.Join(e.Skills, "; "),
	}
}
