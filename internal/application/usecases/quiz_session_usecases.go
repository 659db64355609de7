package usecases

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"satsang/internal/domain/history"
	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"
	"satsang/internal/ports"
)

var (
	ErrSessionNotFound = errors.New("nenhuma sessão de quiz em andamento para esta categoria")
	ErrSessionGated    = errors.New("limite para participantes anônimos atingido: faça login para continuar")
)

type QuizSessionUseCases struct {
	source      ports.QuestionSource
	storage     ports.StorageProvider
	leaderboard *LeaderboardUseCases
	rng         *rand.Rand
	now         func() time.Time
}

// Option ajusta dependências não essenciais (relógio, aleatoriedade).
type Option func(*QuizSessionUseCases)

func WithClock(now func() time.Time) Option {
	return func(uc *QuizSessionUseCases) { uc.now = now }
}

// WithRand fixa a fonte aleatória. *rand.Rand não é seguro para uso concorrente.
func WithRand(r *rand.Rand) Option {
	return func(uc *QuizSessionUseCases) { uc.rng = r }
}

func NewQuizSessionUseCases(
	source ports.QuestionSource,
	storage ports.StorageProvider,
	leaderboard *LeaderboardUseCases,
	opts ...Option,
) *QuizSessionUseCases {
	uc := &QuizSessionUseCases{
		source:      source,
		storage:     storage,
		leaderboard: leaderboard,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// progressFor monta o store do escopo do participante.
func (uc *QuizSessionUseCases) progressFor(scopeID string) *ProgressStore {
	var storage ports.ScopedStorage
	if uc.storage != nil {
		storage = uc.storage.Scope(scopeID)
	}
	return NewProgressStore(storage, uc.now)
}

type StartInput struct {
	ScopeID    string
	CategoryID string
	Count      int
}

// Start inicia uma sessão nova a partir das perguntas da categoria.
func (uc *QuizSessionUseCases) Start(ctx context.Context, input StartInput) (*quiz.Session, error) {
	questions := uc.source.GetQuestions(ctx, input.CategoryID)

	session, err := quiz.NewSession(input.CategoryID, questions, input.Count, uc.rng, uc.now())
	if err != nil {
		return nil, err
	}

	uc.progressFor(input.ScopeID).Save(ctx, input.CategoryID, session)
	logger.Debug("Sessão de quiz iniciada", "categoria", input.CategoryID, "perguntas", len(session.Questions))
	return session, nil
}

// Resume retorna a sessão salva ou nil (o chamador deve iniciar outra).
func (uc *QuizSessionUseCases) Resume(ctx context.Context, scopeID, categoryID string) *quiz.Session {
	return uc.progressFor(scopeID).Load(ctx, categoryID)
}

// IsGated avalia a política de anônimos para a sessão no instante atual.
func (uc *QuizSessionUseCases) IsGated(session *quiz.Session, authenticated bool) bool {
	if session == nil {
		return false
	}
	return quiz.ShouldGate(authenticated, len(session.Answers), session.ElapsedSeconds(uc.now()))
}

type AnswerInput struct {
	ScopeID       string
	Session       *quiz.Session
	QuestionID    string
	SelectedIndex int
	Authenticated bool
}

type AnswerOutput struct {
	Session            *quiz.Session
	Correct            bool
	CorrectAnswerIndex int
	Gated              bool
}

// Answer registra a resposta, persiste e sinaliza se o participante deve autenticar.
// Parar de chamar Answer depois de Gated é responsabilidade do chamador.
func (uc *QuizSessionUseCases) Answer(ctx context.Context, input AnswerInput) (*AnswerOutput, error) {
	if input.Session == nil {
		return nil, ErrSessionNotFound
	}

	current := input.Session.CurrentQuestion()
	next, err := input.Session.Answer(input.QuestionID, input.SelectedIndex)
	if err != nil {
		return nil, err
	}

	uc.progressFor(input.ScopeID).Save(ctx, next.CategoryID, next)

	return &AnswerOutput{
		Session:            next,
		Correct:            current.IsCorrect(input.SelectedIndex),
		CorrectAnswerIndex: current.CorrectAnswerIndex,
		Gated:              uc.IsGated(next, input.Authenticated),
	}, nil
}

type CompleteInput struct {
	ScopeID  string
	Session  *quiz.Session
	Identity *ports.Identity // nil para anônimos
}

// Complete encerra a sessão, limpa o progresso e registra o resultado no ranking.
func (uc *QuizSessionUseCases) Complete(ctx context.Context, input CompleteInput) (*quiz.Summary, error) {
	if input.Session == nil {
		return nil, ErrSessionNotFound
	}

	summary, err := input.Session.Summary()
	if err != nil {
		return nil, err
	}

	uc.progressFor(input.ScopeID).Clear(ctx, input.Session.CategoryID)

	if input.Identity != nil && uc.leaderboard != nil && summary.Total > 0 {
		result, err := history.NewQuizResult(
			input.Identity.UserID, input.Identity.DisplayName,
			summary.CategoryID, summary.Score, summary.Total, uc.now(),
		)
		if err != nil {
			logger.Warn("Resultado não registrado", "categoria", summary.CategoryID, "erro", err)
		} else if err := uc.leaderboard.Record(ctx, result); err != nil {
			// O participante já tem o resumo; o ranking não deve falhar a conclusão.
			logger.Error("Falha ao registrar resultado no ranking", "categoria", summary.CategoryID, "erro", err)
		}
	}

	return summary, nil
}

// Restart descarta o progresso e começa de novo.
func (uc *QuizSessionUseCases) Restart(ctx context.Context, input StartInput) (*quiz.Session, error) {
	uc.progressFor(input.ScopeID).Clear(ctx, input.CategoryID)
	return uc.Start(ctx, input)
}

// Discard remove o progresso salvo da categoria.
func (uc *QuizSessionUseCases) Discard(ctx context.Context, scopeID, categoryID string) {
	uc.progressFor(scopeID).Clear(ctx, categoryID)
}
