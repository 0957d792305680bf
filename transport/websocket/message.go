package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	actionSessionStart = "session:start"
	actionSessionReset = "session:reset"
	actionGameTurn     = "game:turn"
	actionRoundNew     = "round:new"
	actionGameState    = "game:state"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player1 string               `json:"player1,omitempty"`
	Player2 string               `json:"player2,omitempty"`
	Cell    *int                 `json:"cell,omitempty"`
	Session *entity.Session      `json:"session,omitempty"`
	Status  tictactoe.MoveStatus `json:"status,omitempty"`
	Event   *tictactoe.Event     `json:"event,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := sendMessage(conn, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

// sendEvents pushes every engine notification as its own message and closes with the full state.
func sendEvents(conn *websocket.Conn, events []tictactoe.Event, session *entity.Session, status tictactoe.MoveStatus) error {
	for i := range events {
		if err := sendMessage(conn, events[i].Type, Payload{Event: &events[i]}); err != nil {
			return err
		}
	}

	return sendMessage(conn, actionGameState, Payload{Session: session, Status: status})
}
