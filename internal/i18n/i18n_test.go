package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"en", LangEN},
		{"fi", LangFI},
		{" FI ", LangFI},
		{"", DefaultLanguage},
		{"sv", DefaultLanguage},
		{"finnish", DefaultLanguage},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Parse(tc.in), "input %q", tc.in)
	}
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("en"))
	require.True(t, Supported("fi"))
	require.False(t, Supported("sv"))
	require.False(t, Supported(""))
}

func TestTFallsBackToEnglishThenKey(t *testing.T) {
	// every key resolves in both locales
	for _, key := range []string{
		KeyNoPhotos, KeyRetakePhotos, KeyInvalidEmail, KeyEmailRetry,
		KeyUnansweredRequired, KeyReportSubject, KeyReportSurvey,
		KeyReportManual, KeyReportAuthor, KeyReportDate, KeyReportNoAnswer,
	} {
		require.NotEqual(t, key, T(LangEN, key))
		require.NotEqual(t, key, T(LangFI, key))
	}

	// unknown locale answers from the English table
	require.Equal(t, T(LangEN, KeyNoPhotos), T(Language("sv"), KeyNoPhotos))

	// unknown key surfaces the key itself
	require.Equal(t, "bogus.key", T(LangEN, "bogus.key"))
}

func TestLocalesDiffer(t *testing.T) {
	require.NotEqual(t, T(LangEN, KeyRetakePhotos), T(LangFI, KeyRetakePhotos))
}
