package survey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoQuestions() []Question {
	return []Question{
		{ID: "q1", Location: LocationEntrance, Prompt: "one", Analytical: "first"},
		{ID: "q2", Location: LocationCorridor, Prompt: "two", Analytical: "second"},
	}
}

func TestImageReplay(t *testing.T) {
	s := NewSession("s", twoQuestions())

	require.NoError(t, s.AddImage("q1", "a"))
	require.NoError(t, s.AddImage("q1", "b"))
	require.NoError(t, s.AddImage("q1", "c"))
	require.NoError(t, s.RemoveImage("q1", 1))
	require.NoError(t, s.AddImage("q1", "d"))

	// left-to-right replay: [a b c] minus index 1, then append d
	require.Equal(t, []string{"a", "c", "d"}, s.Find("q1").Images)
}

func TestRemoveImageOutOfRangeIsNoop(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))

	require.NoError(t, s.RemoveImage("q1", 5))
	require.NoError(t, s.RemoveImage("q1", -1))
	require.Equal(t, []string{"a"}, s.Find("q1").Images)
}

func TestReplaceImages(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))

	refs := []string{"x", "y"}
	require.NoError(t, s.ReplaceImages("q1", refs))
	refs[0] = "mutated"
	require.Equal(t, []string{"x", "y"}, s.Find("q1").Images)
}

func TestCompletedDoesNotRevert(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))
	require.NoError(t, s.MarkCompleted("q1"))

	require.NoError(t, s.RemoveImage("q1", 0))
	require.Empty(t, s.Find("q1").Images)
	require.True(t, s.Find("q1").Completed)
}

func TestSetAnswerLastWriteWins(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.SetAnswer("q2", "first"))
	require.NoError(t, s.SetAnswer("q2", "second"))
	require.Equal(t, "second", s.Find("q2").Answer)
}

func TestUnknownQuestion(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.ErrorIs(t, s.AddImage("nope", "a"), ErrQuestionNotFound)
	require.ErrorIs(t, s.SetAnswer("nope", "x"), ErrQuestionNotFound)
}

func TestAdvanceWraparound(t *testing.T) {
	tpl := Template()
	s := NewSession("s", tpl)
	s.Index = 3

	for i := 0; i < len(tpl); i++ {
		s.Advance()
	}
	require.Equal(t, 3, s.Index)

	s.Index = 0
	s.Retreat()
	require.Equal(t, len(tpl)-1, s.Index)
	s.Advance()
	require.Equal(t, 0, s.Index)
}

func TestBeginAnalysisGuards(t *testing.T) {
	s := NewSession("s", twoQuestions())

	// zero images: rejected locally
	require.ErrorIs(t, s.BeginAnalysis(), ErrNoImages)
	require.Equal(t, PhaseCapturing, s.Phase)

	require.NoError(t, s.AddImage("q1", "a"))
	require.NoError(t, s.BeginAnalysis())
	require.Equal(t, PhaseAnalyzing, s.Phase)

	// no concurrent analysis for the same session
	require.ErrorIs(t, s.BeginAnalysis(), ErrAnalysisInFlight)

	s.AbortAnalysis()
	require.Equal(t, PhaseCapturing, s.Phase)
	require.False(t, s.Find("q1").Completed)
}

func TestApplyAnalysisSufficientAdvances(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))
	require.NoError(t, s.BeginAnalysis())

	s.ApplyAnalysis("door is fine", true)

	q1 := s.Find("q1")
	require.True(t, q1.Completed)
	require.Equal(t, "door is fine", q1.Answer)
	require.Equal(t, 1, s.Index)
	require.Equal(t, PhaseCapturing, s.Phase)
}

func TestApplyAnalysisLastQuestionCompletes(t *testing.T) {
	s := NewSession("s", twoQuestions())
	s.Index = 1
	require.NoError(t, s.AddImage("q2", "a"))
	require.NoError(t, s.BeginAnalysis())

	s.ApplyAnalysis("all good", true)

	require.Equal(t, PhaseComplete, s.Phase)
	require.Equal(t, 1, s.Index)
	require.True(t, s.Find("q2").Completed)
}

func TestApplyAnalysisInsufficientKeepsPosition(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))
	require.NoError(t, s.BeginAnalysis())

	s.ApplyAnalysis("", false)

	require.Equal(t, 0, s.Index)
	require.Equal(t, PhaseCapturing, s.Phase)
	require.False(t, s.Find("q1").Completed)
	require.Empty(t, s.Find("q1").Answer)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewSession("s", twoQuestions())
	require.NoError(t, s.AddImage("q1", "a"))

	snap := s.Snapshot()
	require.NoError(t, s.AddImage("q1", "b"))
	require.Equal(t, []string{"a"}, snap[0].Images)
}
