package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/lib/pq"

	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
)

type ReportRepository struct{ db *sql.DB }

func NewReportRepository(db *sql.DB) *ReportRepository { return &ReportRepository{db: db} }

// Connect opens a Postgres pool with the same pool settings as the MySQL
// side.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		return nil, err
	}
	return db, nil
}

// Save insert/update one report row.
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	const q = `
INSERT INTO inspection_reports
(id, scope, report_date, created_at, status, author, description, survey_json, manual_json)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO UPDATE SET
 status = EXCLUDED.status,
 survey_json = EXCLUDED.survey_json,
 manual_json = EXCLUDED.manual_json;`

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

func (r *ReportRepository) Get(ctx context.Context, id domain.ReportID) (*domain.Report, error) {
	const q = `
SELECT id, scope, report_date, created_at, status, author, description, survey_json, manual_json
FROM inspection_reports
WHERE id=$1 LIMIT 1;`

	rep, err := scanReport(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rep, err
}

func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	const q = `
SELECT id, scope, report_date, created_at, status, author, description, survey_json, manual_json
FROM inspection_reports
ORDER BY created_at DESC;`

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
	_, err := r.db.ExecContext(ctx, `DELETE FROM inspection_reports WHERE id=$1;`, id)
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
	return &rep, nil
}
