package survey

import "errors"

var (
	// ErrQuestionNotFound indicates an unknown question id within the session.
	ErrQuestionNotFound = errors.New("survey question not found")

	// ErrNoImages is the local validation error for an analysis request
	// made before any photo was captured. No network call is performed.
	ErrNoImages = errors.New("no images captured for question")

	// ErrAnalysisInFlight rejects a second analysis request while one is
	// already running for the session.
	ErrAnalysisInFlight = errors.New("analysis already in progress")
)
