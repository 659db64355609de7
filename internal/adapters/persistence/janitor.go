package persistence

import (
	"context"
	"time"

	"satsang/internal/infra/logger"
)

// Purger remove chaves que não são escritas há algum tempo.
type Purger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Janitor limpa periodicamente o progresso abandonado dos backends sem TTL nativo.
type Janitor struct {
	Purger   Purger
	TTL      time.Duration
	Interval time.Duration
	Now      func() time.Time
}

// Sweep remove tudo que passou do TTL. O limite é estrito: exatamente TTL ainda fica.
func (j *Janitor) Sweep(ctx context.Context) int {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	removed, err := j.Purger.PurgeOlderThan(ctx, now().Add(-j.TTL))
	if err != nil {
		logger.Error("Falha ao limpar progresso expirado", "erro", err)
		return 0
	}
	if removed > 0 {
		logger.Info("Progresso expirado removido", "chaves", removed)
	}
	return removed
}

// Run executa Sweep a cada Interval até o contexto ser cancelado.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}
