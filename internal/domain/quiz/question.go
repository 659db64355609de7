package quiz

import (
	"errors"
	"strings"
)

var ErrInvalidQuestion = errors.New("pergunta inválida")

// Question representa uma pergunta de múltipla escolha de uma categoria.
type Question struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Type               string   `json:"type,omitempty"` // Classificação opcional
}

// Validate verifica se a pergunta é utilizável em uma sessão.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return errors.Join(ErrInvalidQuestion, errors.New("id vazio"))
	}
	if strings.TrimSpace(q.QuestionText) == "" {
		return errors.Join(ErrInvalidQuestion, errors.New("enunciado vazio"))
	}
	if len(q.Options) < 2 {
		return errors.Join(ErrInvalidQuestion, errors.New("são necessárias pelo menos 2 alternativas"))
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return errors.Join(ErrInvalidQuestion, errors.New("alternativa vazia"))
		}
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return errors.Join(ErrInvalidQuestion, errors.New("índice da resposta correta fora das alternativas"))
	}
	return nil
}

// IsCorrect indica se a alternativa escolhida é a correta.
func (q *Question) IsCorrect(selectedIndex int) bool {
	return selectedIndex == q.CorrectAnswerIndex
}

// ValidQuestions filtra as perguntas válidas, devolvendo também as descartadas.
func ValidQuestions(questions []Question) (valid []Question, rejected []error) {
	valid = make([]Question, 0, len(questions))
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			rejected = append(rejected, err)
			continue
		}
		valid = append(valid, questions[i])
	}
	return valid, rejected
}
