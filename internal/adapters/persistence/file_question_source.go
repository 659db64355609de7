package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"
)

// FileQuestionSource lê perguntas de arquivos JSON estáticos: <dir>/<categoria>.json.
type FileQuestionSource struct {
	dir string
}

func NewFileQuestionSource(dir string) *FileQuestionSource {
	return &FileQuestionSource{dir: dir}
}

// GetQuestions implementa QuestionSource: qualquer falha vira lista vazia.
func (s *FileQuestionSource) GetQuestions(_ context.Context, categorySlug string) []quiz.Question {
	questions, err := s.load(categorySlug)
	if err != nil {
		logger.Warn("Falha ao carregar perguntas do arquivo", "categoria", categorySlug, "erro", err)
		return []quiz.Question{}
	}

	valid, rejected := quiz.ValidQuestions(questions)
	for _, err := range rejected {
		logger.Warn("Pergunta descartada", "categoria", categorySlug, "erro", err)
	}
	return valid
}

// Categories lista as categorias disponíveis no diretório.
func (s *FileQuestionSource) Categories() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ".json")
		if quiz.IsValidSlug(slug) {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}

func (s *FileQuestionSource) load(categorySlug string) ([]quiz.Question, error) {
	if !quiz.IsValidSlug(categorySlug) {
		return nil, &os.PathError{Op: "open", Path: categorySlug, Err: os.ErrInvalid}
	}

	content, err := os.ReadFile(filepath.Join(s.dir, categorySlug+".json"))
	if err != nil {
		return nil, err
	}

	var questions []quiz.Question
	if err := json.Unmarshal(content, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
