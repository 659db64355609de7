package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"satsang/internal/infra/logger"
)

// HubMessage envolve a mensagem e o cliente remetente.
type HubMessage struct {
	Client  *Client
	Content Envelope
}

// Hub implementa ports.RealTimeHub. Cada sala é uma categoria.
type Hub struct {
	rooms      map[string]map[*Client]bool // Categoria -> conexões
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// IncomingMsgs é o canal onde o Hub recebe comandos dos clientes
	IncomingMsgs chan HubMessage

	// Handler processa eventos de negócio (injetado via setter ou campo)
	EventHandler func(*Client, Envelope)

	// Mapeia PlayerID -> Client (para envio direto)
	playerSessions map[string]*Client

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
		rooms:          make(map[string]map[*Client]bool),
		playerSessions: make(map[string]*Client),
		IncomingMsgs:   make(chan HubMessage),
	}
}

// BroadcastToRoom envia a mensagem para todos os clientes da categoria.
func (h *Hub) BroadcastToRoom(roomID string, message interface{}) {
	bytes, err := json.Marshal(message)
	if err != nil {
		logger.Error("Erro ao serializar broadcast", "sala", roomID, "erro", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[roomID] {
		select {
		case client.Send <- bytes:
		default:
			// Cliente lento: desconecta fora do lock
			go h.drop(client)
		}
	}
}

// SendToPlayer envia a mensagem para uma única conexão.
func (h *Hub) SendToPlayer(playerID string, message interface{}) {
	bytes, err := json.Marshal(message)
	if err != nil {
		logger.Error("Erro ao serializar mensagem direta", "conexao", playerID, "erro", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if client, ok := h.playerSessions[playerID]; ok {
		select {
		case client.Send <- bytes:
		default:
			logger.Warn("Mensagem descartada: buffer cheio", "conexao", playerID)
		}
	}
}

// RoomSize retorna quantos clientes acompanham a categoria.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) drop(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Run serializa entradas, saídas e eventos até ctx ser cancelado.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.join(client)
		case client := <-h.unregister:
			h.leave(client)
		case msg := <-h.IncomingMsgs:
			if h.EventHandler != nil {
				go h.EventHandler(msg.Client, msg.Content)
			}
		}
	}
}

func (h *Hub) join(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.RoomID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[client.RoomID] = room
	}
	room[client] = true
	h.playerSessions[client.PlayerID] = client

	logger.Debug("Cliente conectado ao ranking", "categoria", client.RoomID, "conexao", client.PlayerID)
}

// leave é idempotente: o canal Send só é fechado na primeira saída.
func (h *Hub) leave(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[client.RoomID]
	if !room[client] {
		return
	}

	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, client.RoomID)
	}
	delete(h.playerSessions, client.PlayerID)
	close(client.Send)
}
