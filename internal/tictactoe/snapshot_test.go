package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameController_Snapshot(t *testing.T) {
	// Given: a session with two moves played
	controller, _ := newStartedController(t)
	playMoves(t, controller, 4, 0)

	// When: taking a snapshot
	session := controller.Snapshot("s1")

	// Then: it holds the whole state
	expected := &entity.Session{
		ID:    "s1",
		Board: [entity.BoardSize]entity.Mark{o, e, e, e, x, e, e, e, e},
		Players: []entity.PlayerState{
			{Name: "Alice", Mark: x},
			{Name: "Bob", Mark: o},
		},
		Turn:   x,
		Status: entity.StatusOngoing,
		Winner: e,
		Round:  1,
	}
	assert.Equal(t, expected, session)
}

func TestRestore(t *testing.T) {
	t.Run("Restored controller continues the round", func(t *testing.T) {
		// Given: a snapshot taken in the middle of a round where X has a point
		controller, _ := newStartedController(t)
		playMoves(t, controller, 0, 3, 1, 4, 2)
		controller.StartNewRound()
		playMoves(t, controller, 0, 3, 1, 4)
		session := controller.Snapshot("s1")

		// When: restoring it and finishing the row
		recorder := NewEventRecorder()
		restored, err := Restore(recorder, StartWithX, session)
		require.NoError(t, err)
		status, err := restored.AttemptMove(2)

		// Then: X wins its second point in the second round
		require.NoError(t, err)
		assert.Equal(t, MoveWon, status)
		assert.Equal(t, 2, restored.Round())
		player1, _ := restored.Players()
		assert.Equal(t, 2, player1.Score)
	})

	t.Run("Restored finished round rejects moves", func(t *testing.T) {
		// Given: a snapshot of a tied round
		controller, _ := newStartedController(t)
		playMoves(t, controller, tieMoves...)
		session := controller.Snapshot("s1")

		// When: restoring it
		restored, err := Restore(nil, nil, session)
		require.NoError(t, err)

		// Then: the round stays over
		assert.True(t, restored.IsEnded())
		assert.Equal(t, entity.MarkTie, restored.Winner())
		status, err := restored.AttemptMove(0)
		require.NoError(t, err)
		assert.Equal(t, MoveRejectedGameEnded, status)
	})

	t.Run("Error on corrupt records", func(t *testing.T) {
		valid := func() *entity.Session {
			controller, _ := newStartedController(t)
			return controller.Snapshot("s1")
		}

		cases := map[string]func(session *entity.Session){
			"missing player": func(session *entity.Session) { session.Players = session.Players[:1] },
			"swapped marks":  func(session *entity.Session) { session.Players[0].Mark = o },
			"bad turn":       func(session *entity.Session) { session.Turn = entity.MarkTie },
			"bad cell":       func(session *entity.Session) { session.Board[3] = "Z" },
			"bad status":     func(session *entity.Session) { session.Status = "paused" },
			"negative score": func(session *entity.Session) { session.Players[1].Score = -1 },
			"finished without winner": func(session *entity.Session) {
				session.Status = entity.StatusFinished
			},
			"winner without a line": func(session *entity.Session) {
				session.Status = entity.StatusFinished
				session.Winner = x
			},
			"tie on an open board": func(session *entity.Session) {
				session.Status = entity.StatusFinished
				session.Winner = entity.MarkTie
			},
			"ongoing with a completed row": func(session *entity.Session) {
				session.Board = [entity.BoardSize]entity.Mark{x, x, x, o, o, e, e, e, e}
			},
			"ongoing with a winner set": func(session *entity.Session) { session.Winner = o },
			"ongoing on a full board": func(session *entity.Session) {
				session.Board = [entity.BoardSize]entity.Mark{x, o, x, x, o, o, o, x, x}
			},
		}

		for name, corrupt := range cases {
			t.Run(name, func(t *testing.T) {
				// Given: a broken record
				session := valid()
				corrupt(session)

				// When: restoring it
				_, err := Restore(nil, nil, session)

				// Then: ErrCorruptSession should be returned
				require.ErrorIs(t, err, apperror.ErrCorruptSession)
			})
		}

		_, err := Restore(nil, nil, nil)
		require.ErrorIs(t, err, apperror.ErrCorruptSession)
	})
}
