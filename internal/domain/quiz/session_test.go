package quiz_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"satsang/internal/domain/quiz"

	"github.com/stretchr/testify/require"
)

func buildQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:                 fmt.Sprintf("q%d", i+1),
			QuestionText:       fmt.Sprintf("Pergunta %d", i+1),
			Options:            []string{"A", "B", "C", "D"},
			CorrectAnswerIndex: i % 4,
		}
	}
	return qs
}

var startTime = time.Date(2026, 1, 14, 6, 0, 0, 0, time.UTC)

func TestNewSession(t *testing.T) {
	all := buildQuestions(8)
	r := rand.New(rand.NewPCG(3, 4))

	s, err := quiz.NewSession("aarti", all, 5, r, startTime)
	require.NoError(t, err)
	require.Equal(t, "aarti", s.CategoryID)
	require.Len(t, s.Questions, 5)
	require.Equal(t, 0, s.CurrentIndex)
	require.Empty(t, s.Answers)
	require.Equal(t, 0, s.Score)
	require.Equal(t, startTime, s.StartedAt)
	require.Equal(t, quiz.StateInProgress, s.State())

	seen := map[string]bool{}
	for _, q := range s.Questions {
		require.False(t, seen[q.ID], "pergunta repetida")
		seen[q.ID] = true
	}
}

func TestNewSession_RequestedCountClamped(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(3), 10, nil, startTime)
	require.NoError(t, err)
	require.Len(t, s.Questions, 3)

	s, err = quiz.NewSession("gita", buildQuestions(3), 0, nil, startTime)
	require.NoError(t, err)
	require.Len(t, s.Questions, 3)
}

func TestNewSession_InsufficientQuestions(t *testing.T) {
	s, err := quiz.NewSession("vazio", nil, 5, nil, startTime)
	require.ErrorIs(t, err, quiz.ErrInsufficientQuestions)
	require.Nil(t, s)
}

func TestSession_AnswerOutOfOrderLeavesSessionUntouched(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(3), 3, rand.New(rand.NewPCG(1, 1)), startTime)
	require.NoError(t, err)

	wrongID := s.Questions[1].ID
	next, err := s.Answer(wrongID, 0)
	require.ErrorIs(t, err, quiz.ErrInvalidTransition)
	require.Nil(t, next)
	require.Equal(t, 0, s.CurrentIndex)
	require.Empty(t, s.Answers)
	require.Equal(t, 0, s.Score)
}

func TestSession_AnswerDoesNotMutateReceiver(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(2), 2, nil, startTime)
	require.NoError(t, err)

	q := s.Questions[0]
	next, err := s.Answer(q.ID, q.CorrectAnswerIndex)
	require.NoError(t, err)

	require.Equal(t, 1, next.CurrentIndex)
	require.Equal(t, 1, next.Score)
	require.Equal(t, []quiz.Answer{{QuestionID: q.ID, SelectedIndex: q.CorrectAnswerIndex}}, next.Answers)

	require.Equal(t, 0, s.CurrentIndex)
	require.Equal(t, 0, s.Score)
	require.Empty(t, s.Answers)
}

func TestSession_AnswerInvalidOption(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(1), 1, nil, startTime)
	require.NoError(t, err)

	_, err = s.Answer(s.Questions[0].ID, 4)
	require.ErrorIs(t, err, quiz.ErrInvalidOption)
	_, err = s.Answer(s.Questions[0].ID, -1)
	require.ErrorIs(t, err, quiz.ErrInvalidOption)
}

func TestSession_ScoringAndSummary(t *testing.T) {
	s, err := quiz.NewSession("ramayana", buildQuestions(5), 5, rand.New(rand.NewPCG(9, 9)), startTime)
	require.NoError(t, err)

	// 3 corretas, 2 erradas
	for i := 0; i < 5; i++ {
		q := s.Questions[s.CurrentIndex]
		selected := q.CorrectAnswerIndex
		if i >= 3 {
			selected = (q.CorrectAnswerIndex + 1) % len(q.Options)
		}
		s, err = s.Answer(q.ID, selected)
		require.NoError(t, err)
	}

	require.Equal(t, 3, s.Score)
	require.Equal(t, quiz.StateCompleted, s.State())
	require.Nil(t, s.CurrentQuestion())

	summary, err := s.Summary()
	require.NoError(t, err)
	require.Equal(t, 3, summary.Score)
	require.Equal(t, 5, summary.Total)
	require.Len(t, summary.Answers, 5)
	for i, a := range summary.Answers {
		require.Equal(t, s.Questions[i].ID, a.QuestionID, "respostas em ordem de resposta")
	}

	_, err = s.Answer(s.Questions[0].ID, 0)
	require.ErrorIs(t, err, quiz.ErrInvalidTransition)
}

func TestSession_SummaryBeforeEnd(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(2), 2, nil, startTime)
	require.NoError(t, err)

	_, err = s.Summary()
	require.ErrorIs(t, err, quiz.ErrInvalidTransition)
}

func TestSession_ElapsedSeconds(t *testing.T) {
	s, err := quiz.NewSession("gita", buildQuestions(1), 1, nil, startTime)
	require.NoError(t, err)

	require.Equal(t, 0, s.ElapsedSeconds(startTime.Add(-time.Minute)))
	require.Equal(t, 121, s.ElapsedSeconds(startTime.Add(121*time.Second+300*time.Millisecond)))
}

func TestSession_StateOfNil(t *testing.T) {
	var s *quiz.Session
	require.Equal(t, quiz.StateNotStarted, s.State())
}
