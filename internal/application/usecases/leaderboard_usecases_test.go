package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"satsang/internal/application/usecases"
	"satsang/internal/domain/history"

	"github.com/stretchr/testify/require"
)

func TestLeaderboard_TopOrdersByScoreAndNumbersPositions(t *testing.T) {
	ctx := context.Background()
	repo := &fakeResultRepo{}
	uc := usecases.NewLeaderboardUseCases(repo, nil)
	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for i, score := range []int{3, 9, 5} {
		r, err := history.NewQuizResult(fmt.Sprintf("u-%d", i), "P", "gita", score, 10, at)
		require.NoError(t, err)
		require.NoError(t, uc.Record(ctx, r))
	}

	top, err := uc.Top(ctx, "gita", 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, []int{9, 5, 3}, []int{top[0].Score, top[1].Score, top[2].Score})
	require.Equal(t, []int{1, 2, 3}, []int{top[0].Position, top[1].Position, top[2].Position})

	top, err = uc.Top(ctx, "gita", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	top, err = uc.Top(ctx, "aarti", 10)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestLeaderboard_RecordBroadcastsToCategoryRoom(t *testing.T) {
	ctx := context.Background()
	hub := &fakeHub{}
	uc := usecases.NewLeaderboardUseCases(&fakeResultRepo{}, hub)

	r, err := history.NewQuizResult("u-1", "Radha", "aarti", 7, 10, time.Now())
	require.NoError(t, err)
	require.NoError(t, uc.Record(ctx, r))

	require.Len(t, hub.broadcasts, 1)
	require.Equal(t, "aarti", hub.broadcasts[0].room)

	msg, ok := hub.broadcasts[0].message.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "leaderboard_update", msg["type"])
	entries, ok := msg["payload"].([]history.LeaderboardEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	require.Equal(t, "Radha", entries[0].DisplayName)
}
