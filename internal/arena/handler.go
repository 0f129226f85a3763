package arena

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/agora-app/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ListTopics returns the debate topics arenas exist for.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": Topics})
}

// GetLadder returns the 100-level ladder for a topic, with the
// caller's progress against the named philosopher merged in.
func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	topicID := mux.Vars(r)["topicId"]
	philosopherID := r.URL.Query().Get("philosopher_id")

	arenas, progress, err := h.service.Ladder(userID, philosopherID, topicID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get ladder"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"arenas":   arenas,
		"progress": progress,
	})
}

// GetArena returns one derived arena.
func (h *Handler) GetArena(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	level, err := strconv.Atoi(vars["level"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid arena level"})
		return
	}

	a := ArenaAt(vars["topicId"], level)
	if a == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Arena not found"})
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// ScoreRound judges a single debate argument.
func (h *Handler) ScoreRound(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.DebateRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Argument == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "argument is required"})
		return
	}

	resp, err := h.service.ScoreRound(r.Context(), userID, req)
	if errors.Is(err, ErrArenaNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Arena not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to score round"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CompleteSession records a finished arena session.
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ArenaCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.CompleteSession(userID, req)
	if errors.Is(err, ErrArenaNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Arena not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to complete session"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
