package usecases

import (
	"context"
	"encoding/json"
	"time"

	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"
	"satsang/internal/ports"
)

const (
	progressKeyPrefix = "quiz_progress_"
	ProgressTTL       = 24 * time.Hour
)

// progressRecord é o formato persistido: a sessão mais o instante do salvamento.
type progressRecord struct {
	quiz.Session
	SavedAt int64 `json:"savedAt"` // Unix em milissegundos
}

// ProgressStore guarda o progresso de uma sessão por categoria.
// É best-effort: nenhuma falha de armazenamento é propagada.
type ProgressStore struct {
	storage ports.ScopedStorage
	now     func() time.Time
}

// NewProgressStore cria o store. storage nil torna o store um no-op.
func NewProgressStore(storage ports.ScopedStorage, now func() time.Time) *ProgressStore {
	if now == nil {
		now = time.Now
	}
	return &ProgressStore{storage: storage, now: now}
}

// ProgressKey retorna a chave usada para a categoria.
func ProgressKey(categoryID string) string {
	return progressKeyPrefix + categoryID
}

// Available indica se há armazenamento neste contexto de execução.
func (s *ProgressStore) Available() bool {
	return s.storage != nil
}

// Save sobrescreve o progresso da categoria.
func (s *ProgressStore) Save(ctx context.Context, categoryID string, session *quiz.Session) {
	if s.storage == nil || session == nil {
		return
	}

	payload, err := json.Marshal(progressRecord{
		Session: *session,
		SavedAt: s.now().UnixMilli(),
	})
	if err != nil {
		logger.Error("Falha ao serializar progresso do quiz", "categoria", categoryID, "erro", err)
		return
	}

	if err := s.storage.Set(ctx, ProgressKey(categoryID), string(payload)); err != nil {
		logger.Error("Falha ao salvar progresso do quiz", "categoria", categoryID, "erro", err)
	}
}

// Load retorna a sessão salva, ou nil se ausente, expirada ou ilegível.
func (s *ProgressStore) Load(ctx context.Context, categoryID string) *quiz.Session {
	if s.storage == nil {
		return nil
	}

	key := ProgressKey(categoryID)
	raw, found, err := s.storage.Get(ctx, key)
	if err != nil {
		logger.Error("Falha ao ler progresso do quiz", "categoria", categoryID, "erro", err)
		return nil
	}
	if !found {
		return nil
	}

	var record progressRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Warn("Progresso do quiz ilegível, ignorando", "categoria", categoryID, "erro", err)
		return nil
	}

	savedAt := time.UnixMilli(record.SavedAt)
	if s.now().Sub(savedAt) > ProgressTTL {
		logger.Info("Progresso do quiz expirado", "categoria", categoryID, "salvoEm", savedAt.UTC())
		s.Clear(ctx, categoryID)
		return nil
	}

	session := record.Session
	return &session
}

// Clear remove o progresso da categoria. Chamadas repetidas são inofensivas.
func (s *ProgressStore) Clear(ctx context.Context, categoryID string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Remove(ctx, ProgressKey(categoryID)); err != nil {
		logger.Error("Falha ao remover progresso do quiz", "categoria", categoryID, "erro", err)
	}
}
