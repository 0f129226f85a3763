package gamification

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agora-app/backend/internal/models"
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

// ── Gamification State ──────────────────────────────────

func (h *Handler) GetGamification(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.GetGamification(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get gamification state"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetLevels returns the static leveling table plus, when the caller
// passes total_xp, progress within it.
func (h *Handler) GetLevels(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"levels": Levels}

	if raw := r.URL.Query().Get("total_xp"); raw != "" {
		totalXP, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || totalXP < 0 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "total_xp must be a non-negative integer"})
			return
		}
		resp["progress"] = ProgressFor(totalXP)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Helpers ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
