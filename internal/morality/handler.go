package morality

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/agora-app/backend/internal/gamification"
	"github.com/agora-app/backend/internal/models"
)

type Handler struct {
	store  *Store
	engine *gamification.Service
}

func NewHandler(store *Store, engine *gamification.Service) *Handler {
	return &Handler{store: store, engine: engine}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ListDilemmas returns the full static corpus.
func (h *Handler) ListDilemmas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"dilemmas": Bank})
}

// ScoreDilemmas recomputes the caller's morality profile from the
// complete answer set in the request, persists it, and reports the
// batch to the gamification engine once per answer.
func (h *Handler) ScoreDilemmas(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ScoreDilemmasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile := Score(req.Answers, Bank)

	if err := h.store.SaveProfile(userID, &profile); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save profile"})
		return
	}

	resp := models.ScoreDilemmasResponse{Profile: profile}

	// One engine event per answer in the batch; the engine derives the
	// lifetime running total from its own event log.
	for range req.Answers {
		result, err := h.engine.OnDilemmaAnswered(userID)
		if err != nil {
			// Profile is saved; XP failures surface as retryable.
			log.Printf("[morality] dilemma event for user %d failed: %v", userID, err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Scoring saved but rewards failed, retry later"})
			return
		}
		if resp.Gamification == nil {
			resp.Gamification = result
		} else {
			resp.Gamification.XPAwarded += result.XPAwarded
			resp.Gamification.TotalXP = result.TotalXP
			resp.Gamification.Level = result.Level
			resp.Gamification.Notifications = append(resp.Gamification.Notifications, result.Notifications...)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetProfile returns the stored profile, or an empty state when the
// user has never completed a quiz.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	profile, err := h.store.GetProfile(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get profile"})
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"profile": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
