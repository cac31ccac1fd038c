package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/sitewalk/inspection-api/internal/domain/manual"
	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
	"github.com/sitewalk/inspection-api/internal/domain/survey"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Save insert/update one report row. The survey and manual question sets
// are stored as JSON columns; reports are immutable after the first save,
// so the upsert only matters for an opportunistic re-save of the same id.
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	const q = `
INSERT INTO inspection_reports
(id, scope, report_date, created_at, status, author, description, survey_json, manual_json)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 status=VALUES(status),
 survey_json=VALUES(survey_json),
 manual_json=VALUES(manual_json);
`
	surveyJSON, err := json.Marshal(rep.Survey)
	if err != nil {
		return err
	}
	manualJSON, err := json.Marshal(rep.Manual)
	if err != nil {
		return err
	}
	created := rep.DateTime
	if created.IsZero() {
		created = time.Now()
	}

	_, err = r.db.ExecContext(ctx, q,
		rep.ID, rep.Scope, rep.Date, created, rep.Status,
		rep.Author, rep.Description, surveyJSON, manualJSON,
	)
	return err
}

// Get by ID
func (r *ReportRepository) Get(ctx context.Context, id domain.ReportID) (*domain.Report, error) {
	const q = `
SELECT id, scope, report_date, created_at, status, author, description, survey_json, manual_json
FROM inspection_reports
WHERE id=? LIMIT 1;
`
	rep, err := scanReport(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rep, err
}

// List returns all reports, newest first.
func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	const q = `
SELECT id, scope, report_date, created_at, status, author, description, survey_json, manual_json
FROM inspection_reports
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *ReportRepository) Delete(ctx context.Context, id domain.ReportID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM inspection_reports WHERE id=?;`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var surveyJSON, manualJSON []byte
	if err := row.Scan(
		&rep.ID, &rep.Scope, &rep.Date, &rep.DateTime, &rep.Status,
		&rep.Author, &rep.Description, &surveyJSON, &manualJSON,
	); err != nil {
		return nil, err
	}
	if len(surveyJSON) > 0 {
		if err := json.Unmarshal(surveyJSON, &rep.Survey); err != nil {
			return nil, err
		}
	}
	if len(manualJSON) > 0 {
		if err := json.Unmarshal(manualJSON, &rep.Manual); err != nil {
			return nil, err
		}
	}
	if rep.Survey == nil {
		rep.Survey = []survey.Question{}
	}
	if rep.Manual == nil {
		rep.Manual = []manual.Question{}
	}
	return &rep, nil
}
