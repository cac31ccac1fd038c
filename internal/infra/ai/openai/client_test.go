package openai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitewalk/inspection-api/internal/i18n"
)

func TestParseResultWellFormed(t *testing.T) {
	raw := `{"answer":"Door frame shows minor wear.","isComplete":true}`
	res := ParseResult(raw, i18n.LangEN)
	require.Equal(t, "Door frame shows minor wear.", res.Answer)
	require.True(t, res.Sufficient)
	require.Empty(t, res.SuggestedAction)
}

func TestParseResultInsufficientKeepsSuggestion(t *testing.T) {
	raw := `{"answer":"Too dark to judge.","isComplete":false,"suggestedAction":"Turn on the lights and retake"}`
	res := ParseResult(raw, i18n.LangEN)
	require.False(t, res.Sufficient)
	require.Equal(t, "Turn on the lights and retake", res.SuggestedAction)
}

func TestParseResultInsufficientWithoutSuggestionGetsDefault(t *testing.T) {
	raw := `{"answer":"Cannot tell.","isComplete":false}`
	res := ParseResult(raw, i18n.LangFI)
	require.False(t, res.Sufficient)
	require.Equal(t, i18n.T(i18n.LangFI, i18n.KeyRetakePhotos), res.SuggestedAction)
}

func TestParseResultMalformedFallsBack(t *testing.T) {
	raw := "The hallway looks fine to me."
	res := ParseResult(raw, i18n.LangEN)
	require.Equal(t, raw, res.Answer)
	require.False(t, res.Sufficient)
	require.Equal(t, i18n.T(i18n.LangEN, i18n.KeyRetakePhotos), res.SuggestedAction)
}

func TestParseResultEmptyAnswerFallsBack(t *testing.T) {
	raw := `{"answer":"  ","isComplete":true}`
	res := ParseResult(raw, i18n.LangFI)
	require.Equal(t, raw, res.Answer)
	require.False(t, res.Sufficient)
	require.Equal(t, i18n.T(i18n.LangFI, i18n.KeyRetakePhotos), res.SuggestedAction)
}
