package httpadapter

import (
	"net/http"

	"satsang/internal/adapters/http/handlers"
	"satsang/internal/adapters/http/middlewares"
	"satsang/internal/adapters/websocket"
	"satsang/internal/ports"

	_ "satsang/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RouterDeps agrupa o que o router precisa.
type RouterDeps struct {
	SessionHandler     *handlers.QuizSessionHandler
	LeaderboardHandler *handlers.LeaderboardHandler
	WSHandler          *websocket.WebSocketHandler
	TokenService       ports.TokenService
	AllowedOrigins     []string
}

// NewRouter configura as rotas e middlewares.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Configuração CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.ClientIDHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Rota de Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// WebSocket Endpoint
	if deps.WSHandler != nil {
		r.Get("/ws", deps.WSHandler.HandleWS)
	}

	// Grupo de rotas do Quiz (anônimos permitidos)
	r.Route("/quiz/{category}", func(r chi.Router) {
		r.Use(middlewares.ClientScope)
		r.Use(middlewares.OptionalAuth(deps.TokenService))

		r.Route("/session", func(r chi.Router) {
			r.Post("/", deps.SessionHandler.StartSession)
			r.Get("/", deps.SessionHandler.GetSession)
			r.Delete("/", deps.SessionHandler.DiscardSession)

			r.Post("/answers", deps.SessionHandler.SubmitAnswer)
			r.Post("/complete", deps.SessionHandler.CompleteSession)
			r.Post("/restart", deps.SessionHandler.RestartSession)
		})

		r.Get("/leaderboard", deps.LeaderboardHandler.GetLeaderboard)
	})

	return r
}
