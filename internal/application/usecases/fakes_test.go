package usecases_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"satsang/internal/domain/history"
	"satsang/internal/domain/quiz"
)

type fakeSource struct {
	questions map[string][]quiz.Question
}

func (f *fakeSource) GetQuestions(_ context.Context, slug string) []quiz.Question {
	return f.questions[slug]
}

func newFakeSource(category string, n int) *fakeSource {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:                 fmt.Sprintf("%s-%d", category, i+1),
			QuestionText:       fmt.Sprintf("Pergunta %d", i+1),
			Options:            []string{"A", "B", "C", "D"},
			CorrectAnswerIndex: i % 4,
		}
	}
	return &fakeSource{questions: map[string][]quiz.Question{category: qs}}
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results []*history.QuizResult
	saveErr error
}

func (f *fakeResultRepo) Save(_ context.Context, r *history.QuizResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, r)
	return nil
}

func (f *fakeResultRepo) TopByCategory(_ context.Context, categoryID string, limit int) ([]history.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := []history.LeaderboardEntry{}
	for _, r := range f.results {
		if r.CategoryID != categoryID {
			continue
		}
		entries = append(entries, history.LeaderboardEntry{
			UserID:      r.UserID,
			DisplayName: r.DisplayName,
			Score:       r.Score,
			Total:       r.Total,
			CompletedAt: r.CompletedAt,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type broadcast struct {
	room    string
	message interface{}
}

type fakeHub struct {
	mu         sync.Mutex
	broadcasts []broadcast
}

func (h *fakeHub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcasts = append(h.broadcasts, broadcast{room: roomID, message: message})
}

func (h *fakeHub) SendToPlayer(string, interface{}) {}
