package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Snapshot returns the stored form of the controller state.
func (that *GameController) Snapshot(id string) *entity.Session {
	session := &entity.Session{
		ID:     id,
		Board:  that.board.Cells(),
		Status: that.status,
		Winner: that.winner,
		Round:  that.round,
	}

	if that.hasSession() {
		session.Players = []entity.PlayerState{that.players[0].State(), that.players[1].State()}
	}

	if that.active != nil {
		session.Turn = that.active.Mark()
	}

	return session
}

// Restore rebuilds a controller from a stored session. Nothing is sent to the presenter.
func Restore(presenter Presenter, starter Starter, session *entity.Session) (*GameController, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	controller := NewGameController(presenter, starter)
	controller.players = [2]*entity.Player{
		entity.RestorePlayer(session.Players[0]),
		entity.RestorePlayer(session.Players[1]),
	}

	controller.board = entity.RestoreBoard(session.Board)

	controller.status = session.Status
	controller.winner = session.Winner
	controller.round = session.Round

	controller.active = controller.playerByMark(session.Turn)

	return controller, nil
}

func validateSession(session *entity.Session) error {
	if session == nil {
		return fmt.Errorf("%w: empty record", apperror.ErrCorruptSession)
	}

	if len(session.Players) != 2 {
		return fmt.Errorf("%w: %d players", apperror.ErrCorruptSession, len(session.Players))
	}

	if session.Players[0].Mark != entity.MarkX || session.Players[1].Mark != entity.MarkO {
		return fmt.Errorf("%w: unexpected player marks", apperror.ErrCorruptSession)
	}

	if !session.Turn.IsPlayable() {
		return fmt.Errorf("%w: turn %q", apperror.ErrCorruptSession, session.Turn)
	}

	for _, player := range session.Players {
		if player.Score < 0 {
			return fmt.Errorf("%w: negative score for %s", apperror.ErrCorruptSession, player.Mark)
		}
	}

	for cell, mark := range session.Board {
		if mark != entity.EmptyCell && !mark.IsPlayable() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrCorruptSession, cell, mark)
		}
	}

	return validateRoundResult(session)
}

// validateRoundResult checks that the status and winner agree with the board.
func validateRoundResult(session *entity.Session) error {
	lineWinner := checkWinner(session.Board)

	switch {
	case session.IsOngoing():
		if lineWinner != entity.EmptyCell || session.Winner != entity.EmptyCell {
			return fmt.Errorf("%w: ongoing round already decided", apperror.ErrCorruptSession)
		}

		if entity.RestoreBoard(session.Board).IsFull() {
			return fmt.Errorf("%w: ongoing round on a full board", apperror.ErrCorruptSession)
		}
	case session.IsFinished():
		if session.Winner == entity.MarkTie {
			if lineWinner != entity.EmptyCell || !entity.RestoreBoard(session.Board).IsFull() {
				return fmt.Errorf("%w: tie does not match the board", apperror.ErrCorruptSession)
			}
			return nil
		}

		if !session.Winner.IsPlayable() || session.Winner != lineWinner {
			return fmt.Errorf("%w: winner %q does not match the board", apperror.ErrCorruptSession, session.Winner)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrCorruptSession, session.Status)
	}

	return nil
}
