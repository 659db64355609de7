package handlers

import (
	"net/http"
	"strconv"

	"satsang/internal/application/usecases"
)

type LeaderboardHandler struct {
	leaderboardUC *usecases.LeaderboardUseCases
}

func NewLeaderboardHandler(leaderboardUC *usecases.LeaderboardUseCases) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUC: leaderboardUC}
}

// GetLeaderboard godoc
// @Summary Ranking da categoria
// @Description Melhores resultados de participantes autenticados, ordenados pelo score.
// @Tags Ranking
// @Produce json
// @Param category path string true "Slug da categoria"
// @Param limit query int false "Limite (default 10, máx 100)"
// @Success 200 {array} history.LeaderboardEntry
// @Failure 400 {object} map[string]string "Parâmetro inválido"
// @Router /quiz/{category}/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	slug, ok := category(w, r)
	if !ok {
		return
	}

	limit := usecases.DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit deve ser numérico", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardUC.Top(r.Context(), slug, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
