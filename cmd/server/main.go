package main

import (
	"log"
	"net/http"
	"os"

	"github.com/agora-app/backend/internal/arena"
	"github.com/agora-app/backend/internal/auth"
	"github.com/agora-app/backend/internal/chat"
	"github.com/agora-app/backend/internal/database"
	"github.com/agora-app/backend/internal/debate"
	"github.com/agora-app/backend/internal/gamification"
	"github.com/agora-app/backend/internal/middleware"
	"github.com/agora-app/backend/internal/morality"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Shared collaborators
	llm := debate.NewClient()
	engine := gamification.NewService(gamification.NewStore(db))

	// Handlers
	authHandler := auth.NewHandler(db)
	gamHandler := gamification.NewHandler(engine)
	moralityHandler := morality.NewHandler(morality.NewStore(db), engine)
	arenaHandler := arena.NewHandler(arena.NewService(arena.NewStore(db), engine, debate.NewJudge(llm)))
	chatHandler := chat.NewHandler(engine, llm)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/gamification", gamHandler.GetGamification).Methods("GET")
	protected.HandleFunc("/gamification/levels", gamHandler.GetLevels).Methods("GET")

	protected.HandleFunc("/dilemmas", moralityHandler.ListDilemmas).Methods("GET")
	protected.HandleFunc("/dilemmas/score", moralityHandler.ScoreDilemmas).Methods("POST")
	protected.HandleFunc("/morality/profile", moralityHandler.GetProfile).Methods("GET")

	protected.HandleFunc("/arena/topics", arenaHandler.ListTopics).Methods("GET")
	protected.HandleFunc("/arena/{topicId}", arenaHandler.GetLadder).Methods("GET")
	protected.HandleFunc("/arena/{topicId}/{level}", arenaHandler.GetArena).Methods("GET")
	protected.HandleFunc("/arena/round", arenaHandler.ScoreRound).Methods("POST")
	protected.HandleFunc("/arena/complete", arenaHandler.CompleteSession).Methods("POST")

	protected.HandleFunc("/philosophers", chatHandler.ListPhilosophers).Methods("GET")
	protected.HandleFunc("/philosophers/{id}/chat", chatHandler.Chat).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
