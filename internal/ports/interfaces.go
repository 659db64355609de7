package ports

import (
	"context"

	"satsang/internal/domain/history"
	"satsang/internal/domain/quiz"
)

// QuestionSource fornece as perguntas de uma categoria.
type QuestionSource interface {
	// GetQuestions nunca falha: qualquer erro de leitura resulta em lista vazia.
	GetQuestions(ctx context.Context, categorySlug string) []quiz.Question
}

// ScopedStorage é um armazenamento chave/valor restrito a um contexto de navegação.
type ScopedStorage interface {
	// Get retorna found=false quando a chave não existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StorageProvider entrega o armazenamento de um escopo (participante).
type StorageProvider interface {
	// Scope retorna nil quando não há armazenamento disponível para o escopo.
	Scope(scopeID string) ScopedStorage
}

// TokenService define o contrato para geração e validação de tokens JWT.
type TokenService interface {
	// GenerateToken gera um token de acesso para o ID do usuário fornecido.
	GenerateToken(userID, displayName string) (string, int64, error)

	// ValidateToken valida o token e retorna as claims do usuário se válido.
	ValidateToken(tokenString string) (*Identity, error)
}

// Identity é o participante autenticado pelo provedor externo.
type Identity struct {
	UserID      string
	DisplayName string
}

// ResultRepository define persistência de resultados para o ranking.
type ResultRepository interface {
	Save(ctx context.Context, result *history.QuizResult) error
	TopByCategory(ctx context.Context, categoryID string, limit int) ([]history.LeaderboardEntry, error)
}

// RealTimeHub define contrato para envio de mensagens via WebSocket.
type RealTimeHub interface {
	BroadcastToRoom(roomID string, message interface{})
	SendToPlayer(playerID string, message interface{})
}
