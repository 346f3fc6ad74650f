package model

import "time"

// ReportFormat is the output format of a report job.
type ReportFormat string

const (
	ReportCSV  ReportFormat = "csv"
	ReportHTML ReportFormat = "html"
)

// ReportJob asks a worker to write a roster snapshot to disk.
type ReportJob struct {
	ID          string       `json:"id"`
	Format      ReportFormat `json:"format"`
	RequestedAt time.Time    `json:"requested_at"`
	// ScheduleID is set when the job was produced by a cron schedule.
	ScheduleID string `json:"schedule_id,omitempty"`
}

// ReportResult is what a worker produced for a job.
type ReportResult struct {
	JobID    string    `json:"job_id"`
	Path     string    `json:"path"`
	Rows     int       `json:"rows"`
	Finished time.Time `json:"finished"`
	Err      string    `json:"error,omitempty"`
}
