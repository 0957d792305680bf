package tictactoe

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestEventRecorder_Events(t *testing.T) {
	// Given: a recorder with two notifications
	recorder := NewEventRecorder()
	recorder.OnRoundEnded("It's a tie!")
	recorder.OnTurnChanged(entity.PlayerState{Name: "Bob", Mark: o})

	// When: reading the events twice
	first := recorder.Events()
	second := recorder.Events()

	// Then: the first read drains the recorder
	assert.Len(t, first, 2)
	assert.Equal(t, "It's a tie!", first[0].Message)
	assert.Equal(t, "Bob", first[1].Player.Name)
	assert.Empty(t, second)
}

func TestLoggingPresenter(t *testing.T) {
	// Given: a logging presenter in front of a recorder
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	recorder := NewEventRecorder()
	presenter := NewLoggingPresenter(logger, recorder)

	// When: a whole round is played through it
	controller := NewGameController(presenter, StartWithX)
	controller.StartNewSession("Alice", "Bob")
	playMoves(t, controller, 0, 3, 1, 4, 2)

	// Then: every notification reached the recorder and the log
	events := recorder.Events()
	assert.Equal(t, EventRoundEnded, events[len(events)-2].Type)
	assert.Contains(t, buf.String(), `"msg":"board changed"`)
	assert.Contains(t, buf.String(), `"message":"Alice won the game!"`)
	assert.Contains(t, buf.String(), `"component":"presenter"`)
}
