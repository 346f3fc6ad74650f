package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/talentiq/internal/domain/model"
)

// ErrNoReportDir is returned when a FileWriter has nowhere to write.
var ErrNoReportDir = errors.New("report directory not configured")

// SnapshotFunc builds the report data at the moment a job runs.
type SnapshotFunc func(ctx context.Context) PrintableReport

// FileWriter writes report jobs as files under a directory.
// It satisfies the report worker's Processor interface.
type FileWriter struct {
	dir      string
	snapshot SnapshotFunc
	now      func() time.Time
}

// NewFileWriter returns a FileWriter rooted at dir.
func NewFileWriter(dir string, snapshot SnapshotFunc) *FileWriter {
	return &FileWriter{dir: dir, snapshot: snapshot, now: time.Now}
}

// Dir returns the output directory.
func (f *FileWriter) Dir() string {
	return f.dir
}

// Process renders job into a new file and reports where it went.
func (f *FileWriter) Process(ctx context.Context, job model.ReportJob) (model.ReportResult, error) {
	if f.dir == "" {
		return model.ReportResult{}, ErrNoReportDir
	}
	if err := ctx.Err(); err != nil {
		return model.ReportResult{}, err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return model.ReportResult{}, fmt.Errorf("create report dir: %w", err)
	}

	report := f.snapshot(ctx)
	ext, render := "csv", func(w io.Writer) error { return WriteCSV(w, report.Employees) }
	if job.Format == model.ReportHTML {
		ext, render = "html", func(w io.Writer) error { return WritePrintable(w, report) }
	}

	now := f.now()
	name := strings.TrimSuffix(FileName(now, ext), "."+ext) + "-" + job.ID + "." + ext
	path := filepath.Join(f.dir, name)
	if err := writeFile(path, render); err != nil {
		return model.ReportResult{}, err
	}
	return model.ReportResult{JobID: job.ID, Path: path, Rows: len(report.Employees), Finished: f.now()}, nil
}

// writeFile renders into a temp file in the same directory and renames it into place.
func writeFile(path string, render func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := render(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}
