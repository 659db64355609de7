package persistence

import (
	"context"
	"database/sql"
	"time"

	"satsang/internal/domain/history"
)

type SQLiteResultRepository struct {
	db *sql.DB
}

func NewSQLiteResultRepository(db *sql.DB) *SQLiteResultRepository {
	return &SQLiteResultRepository{db: db}
}

// Save grava um resultado concluído.
func (r *SQLiteResultRepository) Save(ctx context.Context, res *history.QuizResult) error {
	query := `
		INSERT INTO quiz_results (id, user_id, display_name, category_id, score, total, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.UserID, res.DisplayName, res.CategoryID, res.Score, res.Total, res.CompletedAt.UnixMilli(),
	)
	return err
}

// TopByCategory lista os melhores resultados; o score é o único critério.
func (r *SQLiteResultRepository) TopByCategory(ctx context.Context, categoryID string, limit int) ([]history.LeaderboardEntry, error) {
	query := `
		SELECT user_id, display_name, score, total, completed_at
		FROM quiz_results
		WHERE category_id = ?
		ORDER BY score DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, categoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []history.LeaderboardEntry{}
	for rows.Next() {
		var e history.LeaderboardEntry
		var name sql.NullString
		var completedAt int64

		if err := rows.Scan(&e.UserID, &name, &e.Score, &e.Total, &completedAt); err != nil {
			return nil, err
		}
		e.DisplayName = name.String
		e.CompletedAt = time.UnixMilli(completedAt).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
