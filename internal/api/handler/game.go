package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gungle/gungle/internal/api/request"
	"github.com/gungle/gungle/internal/api/response"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/services/catalog"
	"github.com/gungle/gungle/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	catalogService *catalog.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, catalogService *catalog.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		catalogService: catalogService,
	}
}

// New handles POST /api/v1/game/new
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.StartGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NewGameFromModel(session))
}

// FirearmNames handles GET /api/v1/game/firearm-names
func (h *GameHandler) FirearmNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.catalogService.FirearmNames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, names)
}

// Guess handles POST /api/v1/game/{id}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	var req request.NameGuess
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if strings.TrimSpace(req.FirearmName) == "" {
		WriteError(w, NewInvalidRequestError("firearm_name is required"))
		return
	}

	outcome, err := h.gameController.Guess(r.Context(), sessionID, req.FirearmName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(outcome))
}

// Status handles GET /api/v1/game/{id}/status
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	session, err := h.gameController.Status(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStatusFromModel(session))
}

// Reveal handles GET /api/v1/game/{id}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	session, err := h.gameController.Reveal(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameRevealFromModel(session))
}

// DailyFirearm handles GET /api/v1/game/daily-firearm
func (h *GameHandler) DailyFirearm(w http.ResponseWriter, r *http.Request) {
	firearm, err := h.gameController.DailyFirearm(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.DailyFirearm{
		Firearm: response.FirearmFromModel(firearm),
		Message: "Today's firearm",
	}
	response.JSON(w, http.StatusOK, resp)
}

// Sessions handles GET /api/v1/game/admin/sessions
func (h *GameHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.gameController.Sessions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.GameSession, len(sessions))
	for i, s := range sessions {
		resp[i] = response.GameSessionFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}
