package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

type sessionUseCase interface {
	StartSession(ctx context.Context, player1, player2 string) (*usecase.Result, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*usecase.Result, error)
	NewRound(ctx context.Context, sessionID string) (*usecase.Result, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error
}

type startSessionRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type SessionHandler struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func NewSessionHandler(logger *slog.Logger, sessions sessionUseCase) *SessionHandler {
	return &SessionHandler{
		logger:   logger.With("component", "session_handler"),
		sessions: sessions,
	}
}

func (that *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := that.sessions.StartSession(r.Context(), req.Player1, req.Player2)
	if err != nil {
		that.writeError(w, "StartSession", err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (that *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, "GetSession", err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *SessionHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	result, err := that.sessions.MakeTurn(r.Context(), chi.URLParam(r, "sessionID"), *req.Cell)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *SessionHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	result, err := that.sessions.NewRound(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, "NewRound", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		that.writeError(w, "EndSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *SessionHandler) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrSessionNotFound.Error()})
	case errors.Is(err, apperror.ErrCellOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrCellOutOfRange.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
