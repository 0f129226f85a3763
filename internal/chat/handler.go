package chat

import (
	"encoding/json"
	"net/http"

	"github.com/agora-app/backend/internal/debate"
	"github.com/agora-app/backend/internal/gamification"
	"github.com/agora-app/backend/internal/models"
	"github.com/agora-app/backend/internal/philosophers"
	"github.com/gorilla/mux"
)

// Handler serves the philosopher roster and persona chat.
type Handler struct {
	engine *gamification.Service
	llm    debate.LLMClient
}

func NewHandler(engine *gamification.Service, llm debate.LLMClient) *Handler {
	return &Handler{engine: engine, llm: llm}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ListPhilosophers returns the roster with unlock flags for the
// caller's current level.
func (h *Handler) ListPhilosophers(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	state, err := h.engine.GetGamification(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get state"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"philosophers": philosophers.ForLevel(state.Level),
	})
}

// Chat relays one message to a philosopher persona. Locked
// philosophers cannot be chatted with.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	phil := philosophers.ByID(mux.Vars(r)["id"])
	if phil == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Philosopher not found"})
		return
	}

	state, err := h.engine.GetGamification(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get state"})
		return
	}
	if phil.UnlockLevel > state.Level {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Philosopher not yet unlocked"})
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "message is required"})
		return
	}

	reply, err := h.llm.Complete(
		r.Context(),
		debate.PersonaSystemPrompt(phil.Name, phil.Era, phil.School),
		req.Message,
	)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Philosopher is unavailable, try again"})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		PhilosopherID: phil.ID,
		Reply:         reply,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
