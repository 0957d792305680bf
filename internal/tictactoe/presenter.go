package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	EventBoardChanged = "board:changed"
	EventScoreChanged = "score:changed"
	EventTurnChanged  = "turn:changed"
	EventRoundEnded   = "round:ended"
)

// Presenter receives every state change of a GameController. It holds no game rules.
type Presenter interface {
	OnBoardChanged(cells [entity.BoardSize]entity.Mark)
	OnScoreChanged(player1, player2 entity.PlayerState)
	OnTurnChanged(player entity.PlayerState)
	OnRoundEnded(message string)
}

type NopPresenter struct{}

func (NopPresenter) OnBoardChanged([entity.BoardSize]entity.Mark) {}
func (NopPresenter) OnScoreChanged(_, _ entity.PlayerState) {}
func (NopPresenter) OnTurnChanged(entity.PlayerState) {}
func (NopPresenter) OnRoundEnded(string) {}

// Event is one recorded notification.
type Event struct {
	Type    string                         `json:"type"`
	Board   *[entity.BoardSize]entity.Mark `json:"board,omitempty"`
	Players []entity.PlayerState           `json:"players,omitempty"`
	Player  *entity.PlayerState            `json:"player,omitempty"`
	Message string                         `json:"message,omitempty"`
}

// EventRecorder collects notifications in order so request/response transports can return them.
type EventRecorder struct {
	events []Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (that *EventRecorder) OnBoardChanged(cells [entity.BoardSize]entity.Mark) {
	that.events = append(that.events, Event{Type: EventBoardChanged, Board: &cells})
}

func (that *EventRecorder) OnScoreChanged(player1, player2 entity.PlayerState) {
	that.events = append(that.events, Event{Type: EventScoreChanged, Players: []entity.PlayerState{player1, player2}})
}

func (that *EventRecorder) OnTurnChanged(player entity.PlayerState) {
	that.events = append(that.events, Event{Type: EventTurnChanged, Player: &player})
}

func (that *EventRecorder) OnRoundEnded(message string) {
	that.events = append(that.events, Event{Type: EventRoundEnded, Message: message})
}

// Events returns the recorded events and clears the recorder.
func (that *EventRecorder) Events() []Event {
	events := that.events
	that.events = nil

	return events
}

// LoggingPresenter logs every notification and passes it on.
type LoggingPresenter struct {
	logger *slog.Logger
	next   Presenter
}

func NewLoggingPresenter(logger *slog.Logger, next Presenter) *LoggingPresenter {
	if next == nil {
		next = NopPresenter{}
	}

	return &LoggingPresenter{
		logger: logger.With("component", "presenter"),
		next:   next,
	}
}

func (that *LoggingPresenter) OnBoardChanged(cells [entity.BoardSize]entity.Mark) {
	that.logger.Debug("board changed",
		"row1", cells[0:3],
		"row2", cells[3:6],
		"row3", cells[6:9],
	)

	that.next.OnBoardChanged(cells)
}

func (that *LoggingPresenter) OnScoreChanged(player1, player2 entity.PlayerState) {
	that.logger.Info("score changed",
		slog.Group("player1", "name", player1.Name, "score", player1.Score),
		slog.Group("player2", "name", player2.Name, "score", player2.Score),
	)

	that.next.OnScoreChanged(player1, player2)
}

func (that *LoggingPresenter) OnTurnChanged(player entity.PlayerState) {
	that.logger.Debug("turn changed", "player", player.Name, "mark", player.Mark)

	that.next.OnTurnChanged(player)
}

func (that *LoggingPresenter) OnRoundEnded(message string) {
	that.logger.Info("round ended", "message", message)

	that.next.OnRoundEnded(message)
}
