package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/talentiq/internal/adapters/export"
	"github.com/okian/talentiq/internal/domain/dataset"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleEmployees() []model.Employee {
	return []model.Employee{
		{ID: "emp-001", Name: "Sarah Chen", Role: "Staff Engineer", Department: "Engineering",
			AttritionRisk: 72, Criticality: types.CriticalityCritical, IsKeyPerson: true, Skills: []string{"Go", "Kubernetes"}},
		{ID: "emp-002", Name: "Lee, Jordan", Role: "Analyst", Department: "Finance",
			AttritionRisk: 15, Criticality: types.CriticalityLow},
	}
}

func TestWriteCSV(t *testing.T) {
	Convey("Given two employees", t, func() {
		var buf bytes.Buffer
		So(export.WriteCSV(&buf, sampleEmployees()), ShouldBeNil)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

		Convey("Then the header and rows follow the export layout", func() {
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldEqual, "ID,Name,Role,Department,Attrition Risk,Criticality,Key Person,Skills")
			So(lines[1], ShouldEqual, "emp-001,Sarah Chen,Staff Engineer,Engineering,72,critical,Yes,Go; Kubernetes")
		})

		Convey("And fields containing commas are quoted", func() {
			So(lines[2], ShouldEqual, `emp-002,"Lee, Jordan",Analyst,Finance,15,low,No,`)
			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			So(err, ShouldBeNil)
			So(records[2][1], ShouldEqual, "Lee, Jordan")
		})
	})

	Convey("An empty roster writes only the header", t, func() {
		var buf bytes.Buffer
		So(export.WriteCSV(&buf, nil), ShouldBeNil)
		So(strings.TrimSpace(buf.String()), ShouldEqual, strings.Join(export.CSVHeader, ","))
	})

	Convey("File names use the UTC date", t, func() {
		ts := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -5*3600))
		So(export.FileName(ts, "csv"), ShouldEqual, "talentiq-export-2026-03-10.csv")
	})
}

func TestWritePrintable(t *testing.T) {
	Convey("Given a report built from the seed data", t, func() {
		ds := dataset.Default()
		emps := ds.EmployeesCopy()
		r := export.PrintableReport{
			GeneratedAt:   time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
			Summary:       scoring.Summarize(emps),
			Employees:     emps,
			KnowledgeRisk: scoring.KnowledgeRiskSummary(emps, ds.TeamsCopy()),
			AutoPrint:     true,
		}
		var buf bytes.Buffer
		err := export.WritePrintable(&buf, r)
		html := buf.String()

		So(err, ShouldBeNil)
		So(html, ShouldContainSubstring, "<title>TalentIQ Workforce Report</title>")
		So(html, ShouldContainSubstring, "Generated January 2, 2026 03:04 UTC")
		So(html, ShouldContainSubstring, emps[0].Name)
		So(html, ShouldContainSubstring, "<td>1st</td>")
		So(html, ShouldContainSubstring, "window.print()")

		Convey("User supplied text is escaped", func() {
			var out bytes.Buffer
			So(export.WritePrintable(&out, export.PrintableReport{
				Employees: []model.Employee{{ID: "x", Name: "<script>alert(1)</script>"}},
			}), ShouldBeNil)
			So(out.String(), ShouldNotContainSubstring, "<script>alert(1)</script>")
			So(out.String(), ShouldNotContainSubstring, "window.print()")
		})
	})
}

func TestFileWriter(t *testing.T) {
	Convey("Given a file writer over a temp dir", t, func() {
		dir := filepath.Join(t.TempDir(), "reports")
		fw := export.NewFileWriter(dir, func(context.Context) export.PrintableReport {
			return export.PrintableReport{Employees: sampleEmployees()}
		})
		ctx := context.Background()

		Convey("When a CSV job runs", func() {
			res, err := fw.Process(ctx, model.ReportJob{ID: "job-1", Format: model.ReportCSV})

			Convey("Then the file lands in the directory", func() {
				So(err, ShouldBeNil)
				So(res.Rows, ShouldEqual, 2)
				So(filepath.Dir(res.Path), ShouldEqual, dir)
				So(filepath.Base(res.Path), ShouldStartWith, "talentiq-export-")
				So(filepath.Base(res.Path), ShouldEndWith, "-job-1.csv")
				data, rerr := os.ReadFile(res.Path)
				So(rerr, ShouldBeNil)
				So(string(data), ShouldStartWith, "ID,Name,Role")
			})

			Convey("And no temp files are left behind", func() {
				entries, _ := os.ReadDir(dir)
				So(entries, ShouldHaveLength, 1)
			})
		})

		Convey("When an HTML job runs", func() {
			res, err := fw.Process(ctx, model.ReportJob{ID: "job-2", Format: model.ReportHTML})
			So(err, ShouldBeNil)
			So(res.Path, ShouldEndWith, ".html")
		})

		Convey("When no directory is configured", func() {
			_, err := export.NewFileWriter("", nil).Process(ctx, model.ReportJob{ID: "x"})
			So(errors.Is(err, export.ErrNoReportDir), ShouldBeTrue)
		})
	})
}
