package quiz_test

import (
	"testing"

	"satsang/internal/domain/quiz"

	"github.com/stretchr/testify/require"
)

func TestIsValidSlug(t *testing.T) {
	require.True(t, quiz.IsValidSlug("gita"))
	require.True(t, quiz.IsValidSlug("hanuman-chalisa-2"))
	require.False(t, quiz.IsValidSlug(""))
	require.False(t, quiz.IsValidSlug("-gita"))
	require.False(t, quiz.IsValidSlug("gita--aarti"))
	require.False(t, quiz.IsValidSlug("gita/../x"))
	require.False(t, quiz.IsValidSlug("Gita"))
}
