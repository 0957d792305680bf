package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

func (that *Server) handleSessionStart(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleSessionStart")

	var payloadReq Payload
	if err := unmarshalPayload(msg, &payloadReq); err != nil {
		return sendErrorResponse(conn.ws, msg.Action, "invalid payload")
	}

	if conn.sessionID != "" {
		if err := that.sessions.EndSession(ctx, conn.sessionID); err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
			log.Error("failed to end previous session", "sessionID", conn.sessionID, "error", err)
		}
		conn.sessionID = ""
	}

	result, err := that.sessions.StartSession(ctx, payloadReq.Player1, payloadReq.Player2)
	if err != nil {
		log.Error("failed to start session", "error", err)
		return sendErrorResponse(conn.ws, msg.Action, "failed to start a new session")
	}

	conn.sessionID = result.Session.ID

	log.Info("session started", "sessionID", conn.sessionID)

	return sendEvents(conn.ws, result.Events, result.Session, result.Status)
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn", "sessionID", conn.sessionID)

	if conn.sessionID == "" {
		return sendErrorResponse(conn.ws, msg.Action, apperror.ErrSessionNotStarted.Error())
	}

	var payloadReq Payload
	if err := unmarshalPayload(msg, &payloadReq); err != nil || payloadReq.Cell == nil {
		return sendErrorResponse(conn.ws, msg.Action, "cell is required")
	}

	result, err := that.sessions.MakeTurn(ctx, conn.sessionID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrCellOutOfRange) {
		return sendErrorResponse(conn.ws, msg.Action, apperror.ErrCellOutOfRange.Error())
	}

	if err != nil {
		log.Error("failed to make turn", "error", err)
		return sendErrorResponse(conn.ws, msg.Action, fmt.Sprintf("failed to make turn: %v", unwrapPublic(err)))
	}

	return sendEvents(conn.ws, result.Events, result.Session, result.Status)
}

func (that *Server) handleRoundNew(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleRoundNew", "sessionID", conn.sessionID)

	if conn.sessionID == "" {
		return sendErrorResponse(conn.ws, msg.Action, apperror.ErrSessionNotStarted.Error())
	}

	result, err := that.sessions.NewRound(ctx, conn.sessionID)
	if err != nil {
		log.Error("failed to start new round", "error", err)
		return sendErrorResponse(conn.ws, msg.Action, fmt.Sprintf("failed to start new round: %v", unwrapPublic(err)))
	}

	return sendEvents(conn.ws, result.Events, result.Session, result.Status)
}

func (that *Server) handleSessionReset(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleSessionReset", "sessionID", conn.sessionID)

	if conn.sessionID != "" {
		if err := that.sessions.EndSession(ctx, conn.sessionID); err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
			log.Error("failed to end session", "error", err)
			return sendErrorResponse(conn.ws, msg.Action, "failed to reset session")
		}
		conn.sessionID = ""
	}

	return sendMessage(conn.ws, msg.Action, Payload{})
}

func unmarshalPayload(msg *Message, payload *Payload) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

// unwrapPublic keeps storage details out of client messages.
func unwrapPublic(err error) error {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return apperror.ErrSessionNotFound
	case errors.Is(err, apperror.ErrCorruptSession):
		return apperror.ErrCorruptSession
	default:
		return errors.New("internal error")
	}
}
