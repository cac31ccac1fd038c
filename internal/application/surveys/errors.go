package surveys

import "errors"

// ErrSessionNotFound is surfaced when a session id is unknown, typically
// after a process restart or a stale id from the caller.
var ErrSessionNotFound = errors.New("survey session not found")

// ErrNoQuestionnaire is surfaced when a manual operation runs before any
// questionnaire was loaded for the session.
var ErrNoQuestionnaire = errors.New("no questionnaire loaded")
