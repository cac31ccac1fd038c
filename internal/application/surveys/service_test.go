package surveys

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitewalk/inspection-api/internal/application"
	domain "github.com/sitewalk/inspection-api/internal/domain/survey"
	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

type fakeVision struct {
	calls   int
	lastReq vision.Request
	res     vision.Result
	err     error
}

func (f *fakeVision) Analyze(_ context.Context, req vision.Request) (vision.Result, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return vision.Result{}, f.err
	}
	return f.res, nil
}

func newTestService(fake *fakeVision) *Service {
	return NewService(fake, application.SystemClock{})
}

func TestAnalyzeSufficientAdvances(t *testing.T) {
	fake := &fakeVision{res: vision.Result{Answer: "door frame intact", Sufficient: true}}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangEN)
	first := sess.Questions[0]
	require.NoError(t, svc.AddImage(sess.ID, first.ID, "file:///photo1.jpg"))

	res, err := svc.Analyze(context.Background(), sess.ID, [][]byte{[]byte("jpeg-bytes")})
	require.NoError(t, err)
	require.Equal(t, 1, fake.calls)
	require.Equal(t, first.Analytical, fake.lastReq.Question)
	require.Equal(t, i18n.LangEN, fake.lastReq.Language)

	require.True(t, res.Sufficient)
	require.Equal(t, "door frame intact", res.Answer)
	require.Equal(t, 1, res.Index)
	require.Equal(t, domain.PhaseCapturing, res.Phase)

	got, err := svc.Get(sess.ID)
	require.NoError(t, err)
	require.True(t, got.Questions[0].Completed)
	require.Equal(t, "door frame intact", got.Questions[0].Answer)
}

func TestAnalyzeWithoutPhotosRejectedLocally(t *testing.T) {
	fake := &fakeVision{res: vision.Result{Answer: "x", Sufficient: true}}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangEN)
	// no image captured for the current question
	_, err := svc.Analyze(context.Background(), sess.ID, nil)
	require.ErrorIs(t, err, domain.ErrNoImages)
	require.Zero(t, fake.calls)

	got, _ := svc.Get(sess.ID)
	require.Equal(t, 0, got.Index)
	require.Equal(t, domain.PhaseCapturing, got.Phase)
}

func TestAnalyzeEmptyPayloadRejectedDespiteCapturedRefs(t *testing.T) {
	fake := &fakeVision{res: vision.Result{Answer: "x", Sufficient: true}}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangEN)
	first := sess.Questions[0]
	require.NoError(t, svc.AddImage(sess.ID, first.ID, "file:///photo1.jpg"))

	// a captured ref does not stand in for the photo bytes of the request
	_, err := svc.Analyze(context.Background(), sess.ID, nil)
	require.ErrorIs(t, err, domain.ErrNoImages)
	_, err = svc.Analyze(context.Background(), sess.ID, [][]byte{})
	require.ErrorIs(t, err, domain.ErrNoImages)
	require.Zero(t, fake.calls)

	got, _ := svc.Get(sess.ID)
	require.Equal(t, domain.PhaseCapturing, got.Phase)
}

func TestAnalyzeInsufficientKeepsPosition(t *testing.T) {
	fake := &fakeVision{res: vision.Result{
		Answer:          "image too dark",
		Sufficient:      false,
		SuggestedAction: "take a wider shot",
	}}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangEN)
	first := sess.Questions[0]
	require.NoError(t, svc.AddImage(sess.ID, first.ID, "file:///photo1.jpg"))

	res, err := svc.Analyze(context.Background(), sess.ID, [][]byte{[]byte("jpeg-bytes")})
	require.NoError(t, err)
	require.False(t, res.Sufficient)
	// suggested action carried back verbatim
	require.Equal(t, "take a wider shot", res.SuggestedAction)
	require.Equal(t, 0, res.Index)

	got, _ := svc.Get(sess.ID)
	require.False(t, got.Questions[0].Completed)
	require.Equal(t, domain.PhaseCapturing, got.Phase)
}

func TestAnalyzeTransportErrorLeavesStateUntouched(t *testing.T) {
	fake := &fakeVision{err: errors.New("connection reset")}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangEN)
	first := sess.Questions[0]
	require.NoError(t, svc.AddImage(sess.ID, first.ID, "file:///photo1.jpg"))

	_, err := svc.Analyze(context.Background(), sess.ID, [][]byte{[]byte("jpeg-bytes")})
	require.Error(t, err)

	got, _ := svc.Get(sess.ID)
	require.Equal(t, 0, got.Index)
	require.Equal(t, domain.PhaseCapturing, got.Phase)
	require.Equal(t, []string{"file:///photo1.jpg"}, got.Questions[0].Images)

	// retry works once the service recovers
	fake.err = nil
	fake.res = vision.Result{Answer: "ok now", Sufficient: true}
	res, err := svc.Analyze(context.Background(), sess.ID, [][]byte{[]byte("jpeg-bytes")})
	require.NoError(t, err)
	require.True(t, res.Sufficient)
}

func TestAnalyzeLastQuestionCompletesSurvey(t *testing.T) {
	fake := &fakeVision{res: vision.Result{Answer: "done", Sufficient: true}}
	svc := newTestService(fake)

	sess := svc.Create(i18n.LangFI)
	for i := 0; i < len(sess.Questions)-1; i++ {
		require.NoError(t, svc.Advance(sess.ID))
	}
	last := sess.Questions[len(sess.Questions)-1]
	require.NoError(t, svc.AddImage(sess.ID, last.ID, "file:///facade.jpg"))

	res, err := svc.Analyze(context.Background(), sess.ID, [][]byte{[]byte("jpeg-bytes")})
	require.NoError(t, err)
	require.Equal(t, domain.PhaseComplete, res.Phase)
	require.Equal(t, i18n.LangFI, fake.lastReq.Language)
}

func TestUnknownSession(t *testing.T) {
	svc := newTestService(&fakeVision{})
	_, err := svc.Get("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Analyze(context.Background(), "missing", nil)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManualFlow(t *testing.T) {
	svc := newTestService(&fakeVision{})
	sess := svc.Create(i18n.LangEN)

	qn, err := svc.LoadManual(sess.ID, "Corridor/Hall Area", "Corridor")
	require.NoError(t, err)
	require.NotEmpty(t, qn.Questions)

	// required question unanswered: submission rejected with its text
	_, missing, err := svc.SubmitManual(sess.ID)
	require.NoError(t, err)
	require.Len(t, missing, 1)

	require.NoError(t, svc.AnswerManual(sess.ID, "corridor-clear", "yes"))
	answered, missing, err := svc.SubmitManual(sess.ID)
	require.NoError(t, err)
	require.Nil(t, missing)
	require.Len(t, answered, len(qn.Questions))
}

func TestManualBeforeLoadRejected(t *testing.T) {
	svc := newTestService(&fakeVision{})
	sess := svc.Create(i18n.LangEN)

	_, _, err := svc.SubmitManual(sess.ID)
	require.ErrorIs(t, err, ErrNoQuestionnaire)
	err = svc.AnswerManual(sess.ID, "corridor-clear", "yes")
	require.ErrorIs(t, err, ErrNoQuestionnaire)
}

func TestSnapshotIncludesManual(t *testing.T) {
	svc := newTestService(&fakeVision{})
	sess := svc.Create(i18n.LangEN)

	_, err := svc.LoadManual(sess.ID, "kitchen", "Kitchen")
	require.NoError(t, err)
	require.NoError(t, svc.AnswerManual(sess.ID, "kitchen-smells", "no"))

	qs, ms, lang, err := svc.Snapshot(sess.ID)
	require.NoError(t, err)
	require.Len(t, qs, len(sess.Questions))
	require.NotEmpty(t, ms)
	require.Equal(t, i18n.LangEN, lang)
}
