package websocket

import (
	"context"
	"encoding/json"
	"net/http"

	"satsang/internal/application/usecases"
	"satsang/internal/domain/quiz"
	"satsang/internal/infra/logger"

	"github.com/google/uuid"
)

const (
	EventLeaderboardUpdate  = "leaderboard_update"
	EventLeaderboardRequest = "leaderboard_request"
	EventError              = "error"
)

// WebSocketHandler gerencia o upgrade e o roteamento de eventos.
type WebSocketHandler struct {
	hub           *Hub
	leaderboardUC *usecases.LeaderboardUseCases
}

func NewWebSocketHandler(hub *Hub, leaderboardUC *usecases.LeaderboardUseCases) *WebSocketHandler {
	handler := &WebSocketHandler{
		hub:           hub,
		leaderboardUC: leaderboardUC,
	}

	// Registra o callback no Hub
	hub.EventHandler = handler.HandleEvent
	return handler
}

// HandleWS godoc
// @Summary Acompanha o ranking de uma categoria em tempo real
// @Description Upgrade para WebSocket. O servidor envia leaderboard_update; o cliente pode enviar leaderboard_request.
// @Tags Ranking
// @Param category query string true "Slug da categoria"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Categoria inválida"
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if !quiz.IsValidSlug(category) {
		http.Error(w, "Categoria inválida (category)", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Falha no upgrade WebSocket", "erro", err)
		return
	}

	client := &Client{
		Hub:      h.hub,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		RoomID:   category,
		PlayerID: uuid.NewString(),
	}

	// Snapshot inicial entra no buffer antes do registro
	if msg, err := h.leaderboardMessage(r.Context(), category, usecases.DefaultLeaderboardLimit); err == nil {
		client.Send <- msg
	} else {
		logger.Error("Falha ao carregar ranking inicial", "categoria", category, "erro", err)
	}

	select {
	case client.Hub.register <- client:
	case <-client.Hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// HandleEvent processa mensagens vindas dos clientes (Router de Eventos).
func (h *WebSocketHandler) HandleEvent(client *Client, msg Envelope) {
	switch msg.Type {
	case EventLeaderboardRequest:
		var payload struct {
			Limit int `json:"limit"`
		}
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(client.PlayerID, "payload inválido")
				return
			}
		}

		top, err := h.leaderboardUC.Top(context.Background(), client.RoomID, payload.Limit)
		if err != nil {
			logger.Error("Falha ao consultar ranking", "categoria", client.RoomID, "erro", err)
			h.sendError(client.PlayerID, "ranking indisponível")
			return
		}
		h.hub.SendToPlayer(client.PlayerID, map[string]interface{}{
			"type":    EventLeaderboardUpdate,
			"payload": top,
		})

	default:
		logger.Debug("Evento desconhecido", "tipo", msg.Type)
		h.sendError(client.PlayerID, "evento desconhecido: "+msg.Type)
	}
}

func (h *WebSocketHandler) leaderboardMessage(ctx context.Context, category string, limit int) ([]byte, error) {
	top, err := h.leaderboardUC.Top(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]interface{}{
		"type":    EventLeaderboardUpdate,
		"payload": top,
	})
}

func (h *WebSocketHandler) sendError(playerID, errorMsg string) {
	h.hub.SendToPlayer(playerID, map[string]interface{}{
		"type":    EventError,
		"payload": errorMsg,
	})
}
