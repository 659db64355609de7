package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "satsang/internal/adapters/http"
	"satsang/internal/adapters/http/handlers"
	"satsang/internal/adapters/persistence"
	"satsang/internal/adapters/security"
	"satsang/internal/adapters/websocket"
	"satsang/internal/application/usecases"
	"satsang/internal/infra/config"
	infraDB "satsang/internal/infra/db"
	"satsang/internal/infra/logger"
	"satsang/internal/ports"
)

// @title Satsang Quiz API
// @version 1.0
// @description Sessões de quiz devocional com progresso salvo, bloqueio de anônimos e ranking em tempo real.
// @contact.name Suporte Satsang
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuração e Logger
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	// 2. Banco de Dados
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

	// 3a. Adapters (Persistence)
	var source ports.QuestionSource
	switch cfg.Quiz.Source {
	case config.QuestionSourceSQLite:
		source = persistence.NewSQLiteQuestionRepository(db)
	default:
		source = persistence.NewFileQuestionSource(cfg.Quiz.QuestionsDir)
	}

	storage, closeStorage, err := newStorage(cfg.Storage, db)
	if err != nil {
		logger.Error("Armazenamento de progresso indisponível", "driver", cfg.Storage.Driver, "erro", err)
		os.Exit(1)
	}
	defer closeStorage()

	// Encerra hub e limpeza junto com o servidor
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Backends sem TTL nativo precisam de limpeza periódica
	if purger, ok := storage.(persistence.Purger); ok {
		janitor := &persistence.Janitor{Purger: purger, TTL: usecases.ProgressTTL, Interval: time.Hour}
		go janitor.Run(appCtx)
	}

	resultRepo := persistence.NewSQLiteResultRepository(db)

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET vazio: todos os participantes serão tratados como anônimos")
	}
	tokenService := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	// 3b. Adapters (WebSocket Hub)
	wsHub := websocket.NewHub()
	// Inicia o Hub em background
	go wsHub.Run(appCtx)

	// 4. Application (Use Cases)
	leaderboardUC := usecases.NewLeaderboardUseCases(resultRepo, wsHub)
	sessionUC := usecases.NewQuizSessionUseCases(source, storage, leaderboardUC)

	// 5. Handlers
	router := httpadapter.NewRouter(httpadapter.RouterDeps{
		SessionHandler:     handlers.NewQuizSessionHandler(sessionUC, cfg.Quiz.DefaultCount),
		LeaderboardHandler: handlers.NewLeaderboardHandler(leaderboardUC),
		WSHandler:          websocket.NewWebSocketHandler(wsHub, leaderboardUC),
		TokenService:       tokenService,
		AllowedOrigins:     cfg.AllowedOrigins,
	})

	// 6. Servidor
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Iniciando servidor", "porta", cfg.Port, "perguntas", cfg.Quiz.Source, "progresso", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Falha no servidor HTTP", "erro", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Sinal de encerramento recebido")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Falha ao encerrar o servidor", "erro", err)
	} else {
		logger.Info("Servidor encerrado")
	}
}

// newStorage escolhe onde o progresso das sessões fica salvo.
func newStorage(cfg config.StorageConfig, db *sql.DB) (ports.StorageProvider, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.StorageNone:
		return nil, noop, nil
	case config.StorageSQLite:
		return persistence.NewSQLiteStorage(db), noop, nil
	case config.StorageRedis:
		rdb := persistence.NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, usecases.ProgressTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx); err != nil {
			rdb.Close()
			return nil, noop, err
		}
		return rdb, func() { rdb.Close() }, nil
	default:
		return persistence.NewInMemoryStorage(), noop, nil
	}
}
