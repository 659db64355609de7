package handlers

import (
	"net/http"
	"time"

	"satsang/internal/adapters/http/middlewares"
	"satsang/internal/application/usecases"
	"satsang/internal/domain/quiz"

	"github.com/go-chi/chi/v5"
)

type StartSessionRequest struct {
	Count int `json:"count" validate:"min=0,max=500"`
}

type AnswerRequest struct {
	QuestionID    string `json:"questionId" validate:"required"`
	SelectedIndex *int   `json:"selectedIndex" validate:"required,min=0"`
}

type QuizSessionHandler struct {
	sessionUC    *usecases.QuizSessionUseCases
	defaultCount int
	now          func() time.Time
}

func NewQuizSessionHandler(sessionUC *usecases.QuizSessionUseCases, defaultCount int) *QuizSessionHandler {
	return &QuizSessionHandler{
		sessionUC:    sessionUC,
		defaultCount: defaultCount,
		now:          time.Now,
	}
}

// category lê e valida o slug da rota.
func category(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug := chi.URLParam(r, "category")
	if !quiz.IsValidSlug(slug) {
		http.Error(w, "Categoria inválida", http.StatusBadRequest)
		return "", false
	}
	return slug, true
}

func (h *QuizSessionHandler) view(s *quiz.Session, r *http.Request) SessionView {
	authenticated := middlewares.IdentityFrom(r.Context()) != nil
	return newSessionView(s, h.sessionUC.IsGated(s, authenticated), h.now())
}

func (h *QuizSessionHandler) startInput(w http.ResponseWriter, r *http.Request) (usecases.StartInput, bool) {
	slug, ok := category(w, r)
	if !ok {
		return usecases.StartInput{}, false
	}

	var req StartSessionRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return usecases.StartInput{}, false
	}
	if req.Count == 0 {
		req.Count = h.defaultCount
	}

	return usecases.StartInput{
		ScopeID:    middlewares.ScopeFrom(r.Context()),
		CategoryID: slug,
		Count:      req.Count,
	}, true
}

// StartSession godoc
// @Summary Inicia uma sessão de quiz
// @Description Embaralha as perguntas da categoria e inicia uma sessão nova, substituindo o progresso salvo.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param category path string true "Slug da categoria"
// @Param X-Client-ID header string false "Identificador do dispositivo"
// @Param body body StartSessionRequest false "Quantidade de perguntas (0 usa o padrão)"
// @Success 201 {object} SessionView
// @Failure 400 {object} map[string]string "Erro de validação"
// @Failure 422 {object} map[string]string "Categoria sem perguntas"
// @Router /quiz/{category}/session [post]
func (h *QuizSessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	input, ok := h.startInput(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUC.Start(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.view(session, r))
}

// GetSession godoc
// @Summary Retoma a sessão salva
// @Description Retorna o progresso salvo nas últimas 24h, incluindo o indicador de bloqueio para anônimos.
// @Tags Quiz
// @Produce json
// @Param category path string true "Slug da categoria"
// @Success 200 {object} SessionView
// @Failure 404 {object} map[string]string "Nenhuma sessão em andamento"
// @Router /quiz/{category}/session [get]
func (h *QuizSessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	slug, ok := category(w, r)
	if !ok {
		return
	}

	session := h.sessionUC.Resume(r.Context(), middlewares.ScopeFrom(r.Context()), slug)
	if session == nil {
		writeError(w, usecases.ErrSessionNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.view(session, r))
}

// SubmitAnswer godoc
// @Summary Responde a pergunta atual
// @Description Registra a alternativa escolhida. Participantes anônimos bloqueados precisam autenticar antes.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Slug da categoria"
// @Param body body AnswerRequest true "Resposta"
// @Success 200 {object} AnswerView
// @Failure 400 {object} map[string]string "Erro de validação"
// @Failure 403 {object} map[string]string "Login necessário"
// @Failure 404 {object} map[string]string "Nenhuma sessão em andamento"
// @Failure 409 {object} map[string]string "Pergunta fora de ordem ou sessão concluída"
// @Router /quiz/{category}/session/answers [post]
func (h *QuizSessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	slug, ok := category(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	scopeID := middlewares.ScopeFrom(r.Context())
	authenticated := middlewares.IdentityFrom(r.Context()) != nil

	session := h.sessionUC.Resume(r.Context(), scopeID, slug)
	if session == nil {
		writeError(w, usecases.ErrSessionNotFound)
		return
	}
	if h.sessionUC.IsGated(session, authenticated) {
		writeError(w, usecases.ErrSessionGated)
		return
	}

	out, err := h.sessionUC.Answer(r.Context(), usecases.AnswerInput{
		ScopeID:       scopeID,
		Session:       session,
		QuestionID:    req.QuestionID,
		SelectedIndex: *req.SelectedIndex,
		Authenticated: authenticated,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnswerView{
		Session:            newSessionView(out.Session, out.Gated, h.now()),
		Correct:            out.Correct,
		CorrectAnswerIndex: out.CorrectAnswerIndex,
		Gated:              out.Gated,
	})
}

// CompleteSession godoc
// @Summary Conclui a sessão
// @Description Retorna o resumo, remove o progresso e, se autenticado, registra o resultado no ranking.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param category path string true "Slug da categoria"
// @Success 200 {object} quiz.Summary
// @Failure 404 {object} map[string]string "Nenhuma sessão em andamento"
// @Failure 409 {object} map[string]string "Ainda há perguntas sem resposta"
// @Router /quiz/{category}/session/complete [post]
func (h *QuizSessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	slug, ok := category(w, r)
	if !ok {
		return
	}

	scopeID := middlewares.ScopeFrom(r.Context())
	session := h.sessionUC.Resume(r.Context(), scopeID, slug)
	if session == nil {
		writeError(w, usecases.ErrSessionNotFound)
		return
	}

	summary, err := h.sessionUC.Complete(r.Context(), usecases.CompleteInput{
		ScopeID:  scopeID,
		Session:  session,
		Identity: middlewares.IdentityFrom(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// RestartSession godoc
// @Summary Reinicia a sessão
// @Description Descarta o progresso salvo e começa com perguntas embaralhadas de novo.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param category path string true "Slug da categoria"
// @Param body body StartSessionRequest false "Quantidade de perguntas"
// @Success 201 {object} SessionView
// @Failure 422 {object} map[string]string "Categoria sem perguntas"
// @Router /quiz/{category}/session/restart [post]
func (h *QuizSessionHandler) RestartSession(w http.ResponseWriter, r *http.Request) {
	input, ok := h.startInput(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUC.Restart(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.view(session, r))
}

// DiscardSession godoc
// @Summary Descarta o progresso
// @Tags Quiz
// @Param category path string true "Slug da categoria"
// @Success 204 "No Content"
// @Router /quiz/{category}/session [delete]
func (h *QuizSessionHandler) DiscardSession(w http.ResponseWriter, r *http.Request) {
	slug, ok := category(w, r)
	if !ok {
		return
	}

	h.sessionUC.Discard(r.Context(), middlewares.ScopeFrom(r.Context()), slug)
	w.WriteHeader(http.StatusNoContent)
}
