package usecases

import (
	"context"

	"satsang/internal/domain/history"
	"satsang/internal/infra/logger"
	"satsang/internal/ports"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type LeaderboardUseCases struct {
	resultRepo ports.ResultRepository
	hub        ports.RealTimeHub
}

func NewLeaderboardUseCases(resultRepo ports.ResultRepository, hub ports.RealTimeHub) *LeaderboardUseCases {
	return &LeaderboardUseCases{
		resultRepo: resultRepo,
		hub:        hub,
	}
}

// Record persiste o resultado e notifica quem acompanha a categoria.
func (uc *LeaderboardUseCases) Record(ctx context.Context, result *history.QuizResult) error {
	if err := uc.resultRepo.Save(ctx, result); err != nil {
		return err
	}

	if uc.hub != nil {
		top, err := uc.Top(ctx, result.CategoryID, DefaultLeaderboardLimit)
		if err != nil {
			logger.Warn("Ranking salvo mas não transmitido", "categoria", result.CategoryID, "erro", err)
			return nil
		}
		uc.hub.BroadcastToRoom(result.CategoryID, map[string]interface{}{
			"type":    "leaderboard_update",
			"payload": top,
		})
	}

	return nil
}

// Top retorna o ranking da categoria, ordenado apenas pelo score.
func (uc *LeaderboardUseCases) Top(ctx context.Context, categoryID string, limit int) ([]history.LeaderboardEntry, error) {
	if limit < 1 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	entries, err := uc.resultRepo.TopByCategory(ctx, categoryID, limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}
