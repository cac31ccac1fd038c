package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitewalk/inspection-api/internal/domain/manual"
	domain "github.com/sitewalk/inspection-api/internal/domain/reports"
	"github.com/sitewalk/inspection-api/internal/domain/survey"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStoreRoundtrip(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("key", []byte(`{"a":1}`)))
	data, ok, err := s.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, s.Delete("key"))
	_, ok, err = s.Get("key")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting a missing key is a no-op
	require.NoError(t, s.Delete("key"))
}

func sampleReport(id string) *domain.Report {
	return &domain.Report{
		ID:     domain.ReportID(id),
		Scope:  "Head office",
		Date:   "2026-03-14",
		Status: domain.StatusCompleted,
		Author: "A. Inspector",
		Survey: []survey.Question{
			{
				ID:         "entrance-door",
				Location:   survey.LocationEntrance,
				Prompt:     "Entrance door and frame",
				Analytical: "Inspect the entrance door.",
				Images:     []string{"file:///door.jpg"},
				Answer:     "Fine.",
				Completed:  true,
			},
		},
		Manual: []manual.Question{
			{ID: "entrance-accessible", Text: "Accessible?", Part: manual.PartEntrance, Answer: "yes"},
		},
	}
}

func TestReportStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewReportStore(newTestStore(t))

	rep := sampleReport("report-1000")
	require.NoError(t, repo.Save(ctx, rep))

	got, err := repo.Get(ctx, "report-1000")
	require.NoError(t, err)
	require.Equal(t, rep, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, "report-1000"))
	_, err = repo.Get(ctx, "report-1000")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStoreSaveSameIDDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewReportStore(newTestStore(t))

	rep := sampleReport("report-1000")
	require.NoError(t, repo.Save(ctx, rep))
	require.NoError(t, repo.Save(ctx, rep))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestReportStoreKeepsOthersOnDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewReportStore(newTestStore(t))

	require.NoError(t, repo.Save(ctx, sampleReport("report-1000")))
	require.NoError(t, repo.Save(ctx, sampleReport("report-2000")))
	require.NoError(t, repo.Delete(ctx, "report-1000"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.ReportID("report-2000"), list[0].ID)
}

func TestLanguageStoreFallbacks(t *testing.T) {
	s := newTestStore(t)
	langs := NewLanguageStore(s)

	// missing value defaults to the baseline locale
	lang, err := langs.Load()
	require.NoError(t, err)
	require.Equal(t, i18n.DefaultLanguage, lang)

	require.NoError(t, langs.Store(i18n.LangFI))
	lang, err = langs.Load()
	require.NoError(t, err)
	require.Equal(t, i18n.LangFI, lang)

	// invalid stored value also falls back
	require.NoError(t, s.Set("language", []byte("klingon")))
	lang, err = langs.Load()
	require.NoError(t, err)
	require.Equal(t, i18n.DefaultLanguage, lang)
}
