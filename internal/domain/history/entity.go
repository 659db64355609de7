package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidResult = errors.New("resultado de quiz inválido")

// QuizResult representa uma tentativa concluída de um participante autenticado.
type QuizResult struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completedAt"`
}

// NewQuizResult cria um resultado validado.
func NewQuizResult(userID, displayName, categoryID string, score, total int, completedAt time.Time) (*QuizResult, error) {
	if userID == "" || categoryID == "" {
		return nil, ErrInvalidResult
	}
	if total <= 0 || score < 0 || score > total {
		return nil, ErrInvalidResult
	}

	return &QuizResult{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: displayName,
		CategoryID:  categoryID,
		Score:       score,
		Total:       total,
		CompletedAt: completedAt.UTC(),
	}, nil
}

// LeaderboardEntry é uma linha do ranking. O score é o único critério de ordenação.
type LeaderboardEntry struct {
	Position    int       `json:"position"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completedAt"`
}
