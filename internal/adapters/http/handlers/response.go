package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"satsang/internal/application/usecases"
	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"

	"github.com/go-playground/validator"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Falha ao escrever resposta", "erro", err)
	}
}

// writeError traduz os erros de domínio para status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrInvalidOption), errors.Is(err, quiz.ErrInvalidQuestion):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecases.ErrSessionGated):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, usecases.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quiz.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, quiz.ErrInsufficientQuestions):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Error("Erro inesperado", "erro", err)
		http.Error(w, "Erro interno", http.StatusInternalServerError)
	}
}

// decodeBody aceita corpo vazio e valida o DTO.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
	return validate.Struct(dst)
}
