package surveys

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sitewalk/inspection-api/internal/application"
	"github.com/sitewalk/inspection-api/internal/domain/manual"
	domain "github.com/sitewalk/inspection-api/internal/domain/survey"
	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

// Service implements the survey use-cases: session lifecycle, image and
// answer bookkeeping, and the photo-analysis flow. Sessions live in memory;
// a survey is transient until it is submitted as a report. Mutations on one
// session are serialized through the service mutex, matching the app's
// single logical UI thread.
type Service struct {
	Vision vision.Client
	Clock  application.Clock

	mu       sync.Mutex
	sessions map[string]*state
}

type state struct {
	session *domain.Session
	lang    i18n.Language
	manual  *manual.Questionnaire
}

func NewService(client vision.Client, clock application.Clock) *Service {
	return &Service{
		Vision:   client,
		Clock:    clock,
		sessions: make(map[string]*state),
	}
}

// Create starts a new survey from the fixed question template and returns
// its id. Starting a new survey replaces nothing: each session is
// independent, and the old one simply stops being driven.
func (s *Service) Create(lang i18n.Language) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	sess := domain.NewSession(id, domain.Template())
	s.sessions[id] = &state{session: sess, lang: lang}
	return sess
}

// Get returns the session by id.
func (s *Service) Get(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return st.session, nil
}

// Drop discards a session.
func (s *Service) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Service) withSession(id string, fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(st)
}

// AddImage appends a captured image reference to a question.
func (s *Service) AddImage(sessionID string, q domain.QuestionID, ref string) error {
	return s.withSession(sessionID, func(st *state) error {
		return st.session.AddImage(q, ref)
	})
}

// RemoveImage removes the image at index; out of range is a silent no-op.
func (s *Service) RemoveImage(sessionID string, q domain.QuestionID, idx int) error {
	return s.withSession(sessionID, func(st *state) error {
		return st.session.RemoveImage(q, idx)
	})
}

// ReplaceImages swaps a question's image list wholesale.
func (s *Service) ReplaceImages(sessionID string, q domain.QuestionID, refs []string) error {
	return s.withSession(sessionID, func(st *state) error {
		return st.session.ReplaceImages(q, refs)
	})
}

// SetAnswer overwrites a question's answer.
func (s *Service) SetAnswer(sessionID string, q domain.QuestionID, text string) error {
	return s.withSession(sessionID, func(st *state) error {
		return st.session.SetAnswer(q, text)
	})
}

// MarkCompleted flags a question done.
func (s *Service) MarkCompleted(sessionID string, q domain.QuestionID) error {
	return s.withSession(sessionID, func(st *state) error {
		return st.session.MarkCompleted(q)
	})
}

// Advance moves to the next question (wraps at the end).
func (s *Service) Advance(sessionID string) error {
	return s.withSession(sessionID, func(st *state) error {
		st.session.Advance()
		return nil
	})
}

// Retreat moves to the previous question (wraps at the start).
func (s *Service) Retreat(sessionID string) error {
	return s.withSession(sessionID, func(st *state) error {
		st.session.Retreat()
		return nil
	})
}

// AnalyzeResult is what the analyze use-case hands back to the screen.
type AnalyzeResult struct {
	Question        domain.QuestionID `json:"question"`
	Answer          string            `json:"answer"`
	Sufficient      bool              `json:"sufficient"`
	SuggestedAction string            `json:"suggested_action,omitempty"`
	Phase           domain.Phase      `json:"phase"`
	Index           int               `json:"index"`
}

// Analyze runs the vision call for the current question. The request must
// carry at least one photo or it is rejected locally with no network call;
// the session's captured refs alone do not qualify, since they are only
// device-side pointers. A sufficient result stores the answer, marks the
// question completed and advances (or completes the survey on the last
// question); an insufficient one leaves the position and all state as-is
// and carries the service's suggested action back verbatim. A transport
// error aborts the analysis and leaves every bit of local state untouched
// so the inspector can retry.
func (s *Service) Analyze(ctx context.Context, sessionID string, photos [][]byte) (AnalyzeResult, error) {
	s.mu.Lock()
	st, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return AnalyzeResult{}, ErrSessionNotFound
	}
	sess := st.session
	// the payload must carry photos too, not just the session's captured refs
	if len(photos) == 0 {
		s.mu.Unlock()
		return AnalyzeResult{}, domain.ErrNoImages
	}
	if err := sess.BeginAnalysis(); err != nil {
		s.mu.Unlock()
		return AnalyzeResult{}, err
	}
	q := sess.Current()
	req := vision.Request{
		Images:   photos,
		Question: q.Analytical,
		Language: st.lang,
	}
	s.mu.Unlock()

	// network call happens outside the lock; the analyzing phase keeps a
	// second request for this session out
	res, err := s.Vision.Analyze(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		sess.AbortAnalysis()
		return AnalyzeResult{}, err
	}
	sess.ApplyAnalysis(res.Answer, res.Sufficient)
	return AnalyzeResult{
		Question:        q.ID,
		Answer:          res.Answer,
		Sufficient:      res.Sufficient,
		SuggestedAction: res.SuggestedAction,
		Phase:           sess.Phase,
		Index:           sess.Index,
	}, nil
}

// LoadManual builds the manual questionnaire for a building part and
// attaches it to the session. An unrecognized part yields an empty
// questionnaire, which is a valid state, not an error.
func (s *Service) LoadManual(sessionID, partLabel, areaName string) (*manual.Questionnaire, error) {
	var qn *manual.Questionnaire
	err := s.withSession(sessionID, func(st *state) error {
		st.manual = manual.Filter(partLabel, areaName)
		qn = st.manual
		return nil
	})
	return qn, err
}

// AnswerManual records one manual answer.
func (s *Service) AnswerManual(sessionID string, q manual.QuestionID, value string) error {
	return s.withSession(sessionID, func(st *state) error {
		if st.manual == nil {
			return ErrNoQuestionnaire
		}
		return st.manual.UpdateAnswer(q, value)
	})
}

// SubmitManual validates the required questions. It returns either the
// full answered set or the texts of the unanswered required questions.
func (s *Service) SubmitManual(sessionID string) ([]manual.Question, []string, error) {
	var answered []manual.Question
	var missing []string
	err := s.withSession(sessionID, func(st *state) error {
		if st.manual == nil {
			return ErrNoQuestionnaire
		}
		answered, missing = st.manual.ValidateAndSubmit()
		return nil
	})
	return answered, missing, err
}

// Snapshot returns deep copies of the session's survey and manual question
// sets plus its language, for report assembly.
func (s *Service) Snapshot(sessionID string) ([]domain.Question, []manual.Question, i18n.Language, error) {
	var qs []domain.Question
	var ms []manual.Question
	lang := i18n.DefaultLanguage
	err := s.withSession(sessionID, func(st *state) error {
		qs = st.session.Snapshot()
		if st.manual != nil {
			for _, q := range st.manual.Questions {
				ms = append(ms, *q)
			}
		}
		lang = st.lang
		return nil
	})
	return qs, ms, lang, err
}
