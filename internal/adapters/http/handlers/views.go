package handlers

import (
	"time"

	"satsang/internal/domain/quiz"
)

// QuestionView é a pergunta como exposta ao cliente. CorrectAnswerIndex só
// aparece para perguntas já respondidas.
type QuestionView struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	Type               string   `json:"type,omitempty"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex,omitempty"`
}

type SessionView struct {
	CategoryID     string         `json:"categoryId"`
	State          string         `json:"state"`
	Questions      []QuestionView `json:"questions"`
	CurrentIndex   int            `json:"currentIndex"`
	Total          int            `json:"total"`
	Answers        []quiz.Answer  `json:"answers"`
	Score          int            `json:"score"`
	StartedAt      time.Time      `json:"startedAt"`
	ElapsedSeconds int            `json:"elapsedSeconds"`
	Gated          bool           `json:"gated"`
}

type AnswerView struct {
	Session            SessionView `json:"session"`
	Correct            bool        `json:"correct"`
	CorrectAnswerIndex int         `json:"correctAnswerIndex"`
	Gated              bool        `json:"gated"`
}

func newSessionView(s *quiz.Session, gated bool, now time.Time) SessionView {
	questions := make([]QuestionView, len(s.Questions))
	for i, q := range s.Questions {
		view := QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
			Type:         q.Type,
		}
		if i < s.CurrentIndex {
			idx := q.CorrectAnswerIndex
			view.CorrectAnswerIndex = &idx
		}
		questions[i] = view
	}

	return SessionView{
		CategoryID:     s.CategoryID,
		State:          s.State(),
		Questions:      questions,
		CurrentIndex:   s.CurrentIndex,
		Total:          len(s.Questions),
		Answers:        s.Answers,
		Score:          s.Score,
		StartedAt:      s.StartedAt,
		ElapsedSeconds: s.ElapsedSeconds(now),
		Gated:          gated,
	}
}
