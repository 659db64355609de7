package main

import (
	"context"
	"os"

	"satsang/internal/adapters/persistence"
	"satsang/internal/infra/config"
	infraDB "satsang/internal/infra/db"
	"satsang/internal/infra/logger"
)

// seed copia as categorias de QUESTIONS_DIR para a tabela questions.
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		logger.Error("Não foi possível conectar ao banco", "erro", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := infraDB.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
		logger.Error("Falha na migração", "erro", err)
		os.Exit(1)
	}

	files := persistence.NewFileQuestionSource(cfg.Quiz.QuestionsDir)
	repo := persistence.NewSQLiteQuestionRepository(db)

	categories, err := files.Categories()
	if err != nil {
		logger.Error("Não foi possível listar categorias", "dir", cfg.Quiz.QuestionsDir, "erro", err)
		os.Exit(1)
	}

	ctx := context.Background()
	failed := false
	for _, category := range categories {
		questions := files.GetQuestions(ctx, category)
		if len(questions) == 0 {
			logger.Warn("Categoria sem perguntas válidas, ignorada", "categoria", category)
			continue
		}
		if err := repo.ReplaceCategory(ctx, category, questions); err != nil {
			logger.Error("Falha ao importar categoria", "categoria", category, "erro", err)
			failed = true
			continue
		}
		logger.Info("Categoria importada", "categoria", category, "perguntas", len(questions))
	}

	if failed {
		os.Exit(1)
	}
}
