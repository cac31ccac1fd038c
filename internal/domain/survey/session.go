package survey

// Session walks one inspection visit through the ordered question sequence.
// All mutations happen on a single logical thread; the application layer
// serializes access per session, so the session itself carries no locking.
type Session struct {
	ID        string      `json:"id"`
	Questions []*Question `json:"questions"`
	Index     int         `json:"index"`
	Phase     Phase       `json:"phase"`
}

// NewSession builds a session from a question template. The template slice
// is deep-copied so a new survey always starts from a clean set.
func NewSession(id string, template []Question) *Session {
	qs := make([]*Question, 0, len(template))
	for _, t := range template {
		q := t
		q.Images = append([]string(nil), t.Images...)
		qs = append(qs, &q)
	}
	return &Session{ID: id, Questions: qs, Phase: PhaseCapturing}
}

// Current returns the question at the current position.
func (s *Session) Current() *Question {
	return s.Questions[s.Index]
}

// Find returns the question with the given id, or nil.
func (s *Session) Find(id QuestionID) *Question {
	for _, q := range s.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// AddImage appends an image reference to the question's list. Order is
// append-only and preserved; the UI caps capture slots, not this operation.
func (s *Session) AddImage(id QuestionID, ref string) error {
	q := s.Find(id)
	if q == nil {
		return ErrQuestionNotFound
	}
	q.Images = append(q.Images, ref)
	return nil
}

// RemoveImage deletes the image at index. An out-of-range index is a
// silent no-op.
func (s *Session) RemoveImage(id QuestionID, idx int) error {
	q := s.Find(id)
	if q == nil {
		return ErrQuestionNotFound
	}
	if idx < 0 || idx >= len(q.Images) {
		return nil
	}
	q.Images = append(q.Images[:idx], q.Images[idx+1:]...)
	return nil
}

// ReplaceImages swaps the question's whole image list.
func (s *Session) ReplaceImages(id QuestionID, refs []string) error {
	q := s.Find(id)
	if q == nil {
		return ErrQuestionNotFound
	}
	q.Images = append([]string(nil), refs...)
	return nil
}

// SetAnswer records the latest analysis answer, overwriting any previous one.
func (s *Session) SetAnswer(id QuestionID, text string) error {
	q := s.Find(id)
	if q == nil {
		return ErrQuestionNotFound
	}
	q.Answer = text
	return nil
}

// MarkCompleted flags the question done. The flag never auto-reverts,
// even if images are removed afterward.
func (s *Session) MarkCompleted(id QuestionID) error {
	q := s.Find(id)
	if q == nil {
		return ErrQuestionNotFound
	}
	q.Completed = true
	return nil
}

// Advance moves forward one question, wrapping past the end back to 0.
// Wraparound is a browsing convenience; terminal detection happens in
// ApplyAnalysis, not here.
func (s *Session) Advance() {
	s.Index = (s.Index + 1) % len(s.Questions)
}

// Retreat moves back one question, wrapping before the start to the last.
func (s *Session) Retreat() {
	s.Index = (s.Index - 1 + len(s.Questions)) % len(s.Questions)
}

// BeginAnalysis guards the capturing → analyzing transition for the current
// question. It rejects a request with zero captured images before any network
// call, and rejects a concurrent request while one is in flight.
func (s *Session) BeginAnalysis() error {
	if s.Phase == PhaseAnalyzing {
		return ErrAnalysisInFlight
	}
	if len(s.Current().Images) == 0 {
		return ErrNoImages
	}
	s.Phase = PhaseAnalyzing
	return nil
}

// AbortAnalysis returns to capturing after a failed request, leaving all
// question state untouched so the inspector can retry.
func (s *Session) AbortAnalysis() {
	s.Phase = PhaseCapturing
}

// ApplyAnalysis resolves an in-flight analysis. A sufficient result stores
// the answer, marks the question completed and either advances or, on the
// last question, moves the session to the complete phase. An insufficient
// result changes nothing but the phase: position, images and prior answers
// stay as they were.
func (s *Session) ApplyAnalysis(answer string, sufficient bool) {
	if !sufficient {
		s.Phase = PhaseCapturing
		return
	}
	q := s.Current()
	q.Answer = answer
	q.Completed = true
	if s.Index == len(s.Questions)-1 {
		s.Phase = PhaseComplete
		return
	}
	s.Advance()
	s.Phase = PhaseCapturing
}

// Snapshot returns a deep copy of the question set, used when assembling an
// immutable report at submission time.
func (s *Session) Snapshot() []Question {
	out := make([]Question, 0, len(s.Questions))
	for _, q := range s.Questions {
		c := *q
		c.Images = append([]string(nil), q.Images...)
		out = append(out, c)
	}
	return out
}
