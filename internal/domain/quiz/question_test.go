package quiz_test

import (
	"testing"

	"satsang/internal/domain/quiz"

	"github.com/stretchr/testify/require"
)

func TestQuestion_Validate(t *testing.T) {
	valid := quiz.Question{ID: "q1", QuestionText: "Quem compôs o Hanuman Chalisa?", Options: []string{"Tulsidas", "Kabir"}, CorrectAnswerIndex: 0}
	require.NoError(t, valid.Validate())

	noOptions := valid
	noOptions.Options = []string{"Tulsidas"}
	require.ErrorIs(t, noOptions.Validate(), quiz.ErrInvalidQuestion)

	badIndex := valid
	badIndex.CorrectAnswerIndex = 2
	require.ErrorIs(t, badIndex.Validate(), quiz.ErrInvalidQuestion)

	emptyText := valid
	emptyText.QuestionText = "  "
	require.ErrorIs(t, emptyText.Validate(), quiz.ErrInvalidQuestion)
}

func TestValidQuestions(t *testing.T) {
	qs := []quiz.Question{
		{ID: "q1", QuestionText: "a", Options: []string{"x", "y"}, CorrectAnswerIndex: 1},
		{ID: "", QuestionText: "b", Options: []string{"x", "y"}},
		{ID: "q3", QuestionText: "c", Options: []string{"x", "y"}, CorrectAnswerIndex: -1},
	}

	valid, rejected := quiz.ValidQuestions(qs)
	require.Len(t, valid, 1)
	require.Equal(t, "q1", valid[0].ID)
	require.Len(t, rejected, 2)
}
