package quiz

import (
	"errors"
	"math/rand/v2"
	"time"
)

// Estados da Sessão (State Machine)
const (
	StateNotStarted = "NOT_STARTED"
	StateInProgress = "IN_PROGRESS"
	StateCompleted  = "COMPLETED"
)

var (
	ErrInsufficientQuestions = errors.New("não há perguntas disponíveis para esta categoria")
	ErrInvalidTransition     = errors.New("transição inválida para o estado atual da sessão")
	ErrInvalidOption         = errors.New("alternativa selecionada não existe nesta pergunta")
)

// Answer registra a alternativa escolhida para uma pergunta.
type Answer struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
}

// Session representa uma tentativa de um participante em uma categoria.
// As transições nunca alteram o receptor: devolvem uma nova sessão.
type Session struct {
	CategoryID   string     `json:"categoryId"`
	Questions    []Question `json:"questions"`
	CurrentIndex int        `json:"currentIndex"`
	Answers      []Answer   `json:"answers"` // Ordem de resposta
	Score        int        `json:"score"`
	StartedAt    time.Time  `json:"startedAt"`
}

// Summary é o resultado final de uma sessão concluída.
type Summary struct {
	CategoryID string   `json:"categoryId"`
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Answers    []Answer `json:"answers"`
}

// NewSession embaralha as perguntas e inicia uma sessão com até requested delas.
// requested <= 0 usa todas.
func NewSession(categoryID string, all []Question, requested int, r *rand.Rand, now time.Time) (*Session, error) {
	if len(all) == 0 {
		return nil, ErrInsufficientQuestions
	}

	shuffled := Shuffle(all, r)
	if requested <= 0 || requested > len(shuffled) {
		requested = len(shuffled)
	}

	return &Session{
		CategoryID:   categoryID,
		Questions:    shuffled[:requested:requested],
		CurrentIndex: 0,
		Answers:      []Answer{},
		Score:        0,
		StartedAt:    now.UTC(),
	}, nil
}

// State devolve o estado atual da sessão.
func (s *Session) State() string {
	if s == nil {
		return StateNotStarted
	}
	if s.CurrentIndex >= len(s.Questions) {
		return StateCompleted
	}
	return StateInProgress
}

// CurrentQuestion devolve a pergunta aguardando resposta, ou nil se concluída.
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	q := s.Questions[s.CurrentIndex]
	return &q
}

// Answer registra a resposta da pergunta atual e avança.
func (s *Session) Answer(questionID string, selectedIndex int) (*Session, error) {
	current := s.CurrentQuestion()
	if current == nil {
		return nil, ErrInvalidTransition
	}
	if current.ID != questionID {
		return nil, ErrInvalidTransition
	}
	if selectedIndex < 0 || selectedIndex >= len(current.Options) {
		return nil, ErrInvalidOption
	}

	next := s.clone()
	next.Answers = append(next.Answers, Answer{QuestionID: questionID, SelectedIndex: selectedIndex})
	if current.IsCorrect(selectedIndex) {
		next.Score++
	}
	next.CurrentIndex++

	return next, nil
}

// Summary fecha a sessão. Só é válido depois da última resposta.
func (s *Session) Summary() (*Summary, error) {
	if s.CurrentIndex != len(s.Questions) {
		return nil, ErrInvalidTransition
	}

	answers := make([]Answer, len(s.Answers))
	copy(answers, s.Answers)

	return &Summary{
		CategoryID: s.CategoryID,
		Score:      s.Score,
		Total:      len(s.Questions),
		Answers:    answers,
	}, nil
}

// ElapsedSeconds devolve quantos segundos se passaram desde o início.
func (s *Session) ElapsedSeconds(now time.Time) int {
	elapsed := now.Sub(s.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}

// clone copia a sessão; Questions é imutável após o início e pode ser compartilhado.
func (s *Session) clone() *Session {
	answers := make([]Answer, len(s.Answers), len(s.Answers)+1)
	copy(answers, s.Answers)

	c := *s
	c.Answers = answers
	return &c
}
