package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"satsang/internal/adapters/persistence"
	"satsang/internal/application/usecases"
	"satsang/internal/domain/quiz"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// brokenStorage simula armazenamento cheio ou indisponível.
type brokenStorage struct{}

func (brokenStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage indisponível")
}
func (brokenStorage) Set(context.Context, string, string) error { return errors.New("quota excedida") }
func (brokenStorage) Remove(context.Context, string) error      { return errors.New("storage indisponível") }

func sampleSession(t *testing.T, now time.Time) *quiz.Session {
	t.Helper()
	qs := make([]quiz.Question, 4)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:                 fmt.Sprintf("q%d", i),
			QuestionText:       fmt.Sprintf("Pergunta %d", i),
			Options:            []string{"a", "b", "c"},
			CorrectAnswerIndex: i % 3,
		}
	}
	qs[0].Type = "aarti"

	s, err := quiz.NewSession("aarti", qs, 4, nil, now)
	require.NoError(t, err)
	s, err = s.Answer(s.Questions[0].ID, 1)
	require.NoError(t, err)
	return s
}

func TestProgressStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 5, 10, 5, 30, 0, 0, time.UTC)}
	store := usecases.NewProgressStore(persistence.NewInMemoryStorage().Scope("c1"), clock.Now)

	session := sampleSession(t, clock.Now())
	store.Save(ctx, "aarti", session)

	loaded := store.Load(ctx, "aarti")
	require.NotNil(t, loaded)
	require.Equal(t, session, loaded)
}

func TestProgressStore_LoadAbsent(t *testing.T) {
	store := usecases.NewProgressStore(persistence.NewInMemoryStorage().Scope("c1"), nil)
	require.Nil(t, store.Load(context.Background(), "gita"))
}

func TestProgressStore_ExpiresAfter24h(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 5, 10, 5, 30, 0, 0, time.UTC)}
	storage := persistence.NewInMemoryStorage().Scope("c1")
	store := usecases.NewProgressStore(storage, clock.Now)

	store.Save(ctx, "aarti", sampleSession(t, clock.Now()))

	clock.Advance(24 * time.Hour)
	require.NotNil(t, store.Load(ctx, "aarti"), "exatamente 24h ainda é válido")

	clock.Advance(time.Millisecond)
	require.Nil(t, store.Load(ctx, "aarti"))

	_, found, err := storage.Get(ctx, usecases.ProgressKey("aarti"))
	require.NoError(t, err)
	require.False(t, found, "o slot expirado deve ser removido")
}

func TestProgressStore_ArtificiallyOldSavedAt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 5, 30, 0, 0, time.UTC)
	storage := persistence.NewInMemoryStorage().Scope("c1")
	store := usecases.NewProgressStore(storage, func() time.Time { return now })

	payload := fmt.Sprintf(`{"categoryId":"gita","questions":[],"currentIndex":0,"answers":[],"score":0,"startedAt":"2026-05-09T04:00:00Z","savedAt":%d}`,
		now.Add(-25*time.Hour).UnixMilli())
	require.NoError(t, storage.Set(ctx, usecases.ProgressKey("gita"), payload))

	require.Nil(t, store.Load(ctx, "gita"))
	_, found, _ := storage.Get(ctx, usecases.ProgressKey("gita"))
	require.False(t, found)
}

func TestProgressStore_CorruptPayloadIsAbsent(t *testing.T) {
	ctx := context.Background()
	storage := persistence.NewInMemoryStorage().Scope("c1")
	require.NoError(t, storage.Set(ctx, usecases.ProgressKey("gita"), "{quebrado"))

	store := usecases.NewProgressStore(storage, nil)
	require.Nil(t, store.Load(ctx, "gita"))
}

func TestProgressStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := usecases.NewProgressStore(persistence.NewInMemoryStorage().Scope("c1"), nil)

	store.Save(ctx, "aarti", sampleSession(t, time.Now()))
	store.Clear(ctx, "aarti")
	store.Clear(ctx, "aarti")
	require.Nil(t, store.Load(ctx, "aarti"))
}

func TestProgressStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 5, 30, 0, 0, time.UTC)
	store := usecases.NewProgressStore(persistence.NewInMemoryStorage().Scope("c1"), func() time.Time { return now })

	first := sampleSession(t, now)
	second, err := first.Answer(first.Questions[1].ID, 0)
	require.NoError(t, err)

	store.Save(ctx, "aarti", first)
	store.Save(ctx, "aarti", second)
	require.Equal(t, second, store.Load(ctx, "aarti"))
}

func TestProgressStore_WithoutStorageIsNoop(t *testing.T) {
	ctx := context.Background()
	store := usecases.NewProgressStore(nil, nil)

	require.False(t, store.Available())
	require.NotPanics(t, func() {
		store.Save(ctx, "aarti", sampleSession(t, time.Now()))
		store.Clear(ctx, "aarti")
	})
	require.Nil(t, store.Load(ctx, "aarti"))
}

func TestProgressStore_StorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := usecases.NewProgressStore(brokenStorage{}, nil)

	require.True(t, store.Available())
	require.NotPanics(t, func() {
		store.Save(ctx, "aarti", sampleSession(t, time.Now()))
		store.Clear(ctx, "aarti")
	})
	require.Nil(t, store.Load(ctx, "aarti"))
}
