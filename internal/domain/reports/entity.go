package reports

import (
	"time"

	"github.com/sitewalk/inspection-api/internal/domain/manual"
	"github.com/sitewalk/inspection-api/internal/domain/survey"
)

// ReportID identifies a persisted report. IDs are generated at submission
// time from the timestamp plus a random suffix, so they are unique across
// devices.
type ReportID string

// Status enum
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Aggregate Root: Report. Once persisted a report is immutable; the only
// later mutation is deletion by id. Image references inside the survey
// questions are opaque device-local URIs with no long-term validity
// guarantee.
type Report struct {
	ID          ReportID          `json:"id"`
	Scope       string            `json:"scope"`
	Date        string            `json:"date"`
	DateTime    time.Time         `json:"date_time"`
	Status      Status            `json:"status"`
	Author      string            `json:"author"`
	Description string            `json:"description,omitempty"`
	Survey      []survey.Question `json:"survey"`
	Manual      []manual.Question `json:"manual"`
}

// StatusFor derives the report status from the survey snapshot: completed
// when every question is done, not-started when none is, in-progress
// otherwise.
func StatusFor(qs []survey.Question) Status {
	done := 0
	for _, q := range qs {
		if q.Completed {
			done++
		}
	}
	switch {
	case len(qs) > 0 && done == len(qs):
		return StatusCompleted
	case done == 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}
