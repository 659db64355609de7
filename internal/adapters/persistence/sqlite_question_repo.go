package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"
)

// SQLiteQuestionRepository lê e importa perguntas por categoria.
type SQLiteQuestionRepository struct {
	db *sql.DB
}

func NewSQLiteQuestionRepository(db *sql.DB) *SQLiteQuestionRepository {
	return &SQLiteQuestionRepository{db: db}
}

// GetQuestions implementa QuestionSource: erros viram lista vazia.
func (r *SQLiteQuestionRepository) GetQuestions(ctx context.Context, categorySlug string) []quiz.Question {
	if !quiz.IsValidSlug(categorySlug) {
		logger.Warn("Categoria inválida", "categoria", categorySlug)
		return []quiz.Question{}
	}

	questions, err := r.FindByCategory(ctx, categorySlug)
	if err != nil {
		logger.Error("Falha ao buscar perguntas", "categoria", categorySlug, "erro", err)
		return []quiz.Question{}
	}

	valid, rejected := quiz.ValidQuestions(questions)
	for _, err := range rejected {
		logger.Warn("Pergunta descartada", "categoria", categorySlug, "erro", err)
	}
	return valid
}

// FindByCategory retorna as perguntas na ordem cadastrada.
func (r *SQLiteQuestionRepository) FindByCategory(ctx context.Context, categoryID string) ([]quiz.Question, error) {
	query := `
		SELECT id, question_text, options, correct_answer_index, type
		FROM questions
		WHERE category_id = ?
		ORDER BY sort_order ASC
	`
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []quiz.Question{}
	for rows.Next() {
		var q quiz.Question
		var options string
		var qType sql.NullString

		if err := rows.Scan(&q.ID, &q.QuestionText, &options, &q.CorrectAnswerIndex, &qType); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("alternativas corrompidas na pergunta %s: %w", q.ID, err)
		}
		q.Type = qType.String
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ReplaceCategory substitui todas as perguntas de uma categoria (transactional).
func (r *SQLiteQuestionRepository) ReplaceCategory(ctx context.Context, categoryID string, questions []quiz.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE category_id = ?", categoryID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (id, category_id, question_text, options, correct_answer_index, type, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		var qType sql.NullString
		if q.Type != "" {
			qType = sql.NullString{String: q.Type, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, q.ID, categoryID, q.QuestionText, string(options), q.CorrectAnswerIndex, qType, i+1); err != nil {
			return fmt.Errorf("erro ao inserir pergunta %s: %w", q.ID, err)
		}
	}

	return tx.Commit()
}
