package reportsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitewalk/inspection-api/internal/application"
	"github.com/sitewalk/inspection-api/internal/domain/mail"
	"github.com/sitewalk/inspection-api/internal/domain/manual"
	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
	"github.com/sitewalk/inspection-api/internal/domain/survey"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

// ErrArchiveDisabled is returned when archiving is requested but no object
// store was configured.
var ErrArchiveDisabled = errors.New("report archive not configured")

// Service implements the report use-cases: assembly at submission time,
// persistence, email export and archiving.
type Service struct {
	Repo    domain.Repository
	Mailer  mail.Dispatcher
	Archive domain.ArchiveStore
	Clock   application.Clock
}

// SubmitCommand carries everything a report is assembled from. The survey
// and manual snapshots are taken at submission time; the report never sees
// later session mutations.
type SubmitCommand struct {
	Scope       string
	Author      string
	Description string
	Survey      []survey.Question
	Manual      []manual.Question
}

// Submit builds and persists a new report. The id is derived from the
// submission timestamp plus a random suffix so ids stay unique across
// devices. Persistence is at-most-once per call.
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Report, error) {
	now := s.Clock.Now()
	id := domain.ReportID(fmt.Sprintf("report-%d-%s", now.UnixMilli(), uuid.New().String()[:8]))

	rep := &domain.Report{
		ID:          id,
		Scope:       cmd.Scope,
		Date:        now.Format("2006-01-02"),
		DateTime:    now,
		Status:      domain.StatusFor(cmd.Survey),
		Author:      cmd.Author,
		Description: cmd.Description,
		Survey:      cmd.Survey,
		Manual:      cmd.Manual,
	}
	if err := s.Repo.Save(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// List returns all stored reports.
func (s *Service) List(ctx context.Context) ([]*domain.Report, error) {
	return s.Repo.List(ctx)
}

// Get one report by id.
func (s *Service) Get(ctx context.Context, id domain.ReportID) (*domain.Report, error) {
	return s.Repo.Get(ctx, id)
}

// Delete removes a report by id. Deletion is the only mutation a persisted
// report allows.
func (s *Service) Delete(ctx context.Context, id domain.ReportID) error {
	return s.Repo.Delete(ctx, id)
}

// Summary counts stored reports per status.
func (s *Service) Summary(ctx context.Context) (map[string]any, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[domain.Status]int{}
	for _, rep := range list {
		counts[rep.Status]++
	}
	return map[string]any{
		"total":       len(list),
		"completed":   counts[domain.StatusCompleted],
		"in_progress": counts[domain.StatusInProgress],
		"not_started": counts[domain.StatusNotStarted],
	}, nil
}

// Email renders the report as HTML and hands it to the dispatcher. The
// recipient is validated locally first; a malformed address never reaches
// the dispatch service. If the report was never saved it is saved now, so
// re-sending an already-saved report does not create a duplicate.
func (s *Service) Email(ctx context.Context, rep *domain.Report, recipient string, lang i18n.Language) (mail.Result, error) {
	if err := mail.ValidateAddress(recipient); err != nil {
		return mail.Result{}, err
	}

	if _, err := s.Repo.Get(ctx, rep.ID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return mail.Result{}, err
		}
		if err := s.Repo.Save(ctx, rep); err != nil {
			return mail.Result{}, err
		}
	}

	html, err := RenderHTML(rep, lang)
	if err != nil {
		return mail.Result{}, err
	}

	res := s.Mailer.Send(ctx, mail.Message{
		To:      recipient,
		Subject: fmt.Sprintf("%s - %s", i18n.T(lang, i18n.KeyReportSubject), rep.Scope),
		HTML:    html,
	})
	return res, nil
}

// EmailByID fetches a stored report and emails it.
func (s *Service) EmailByID(ctx context.Context, id domain.ReportID, recipient string, lang i18n.Language) (mail.Result, error) {
	rep, err := s.Repo.Get(ctx, id)
	if err != nil {
		return mail.Result{}, err
	}
	return s.Email(ctx, rep, recipient, lang)
}

// ArchiveReport uploads the rendered HTML export to the object store and
// returns its URL.
func (s *Service) ArchiveReport(ctx context.Context, id domain.ReportID, lang i18n.Language) (string, error) {
	if s.Archive == nil {
		return "", ErrArchiveDisabled
	}
	rep, err := s.Repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := RenderHTML(rep, lang)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("reports/%s.html", rep.ID)
	return s.Archive.UploadHTML(ctx, key, []byte(html))
}
