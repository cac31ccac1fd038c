package vision

import (
	"context"
	"errors"

	"github.com/sitewalk/inspection-api/internal/i18n"
)

// ErrQuotaExceeded indicates the vision provider returned a quota/limit
// error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("vision quota exceeded")

// Request carries one analysis call: the captured photos (raw bytes,
// embedded base64 on the wire), the analytical question and the language the
// answer should come back in.
type Request struct {
	Images   [][]byte
	Question string
	Language i18n.Language
}

// Result is the structured answer from the vision service. When the service
// judges the photos insufficient, Sufficient is false and SuggestedAction
// carries the corrective instruction (kept short by contract with the
// service prompt; not enforced locally).
type Result struct {
	Answer          string `json:"answer"`
	Sufficient      bool   `json:"isComplete"`
	SuggestedAction string `json:"suggestedAction,omitempty"`
}

// Client port. Implementations must degrade a malformed service response
// into a fallback Result instead of returning an error: raw text as the
// answer, insufficient, localized retake-photos suggestion.
type Client interface {
	Analyze(ctx context.Context, req Request) (Result, error)
}
