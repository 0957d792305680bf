package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// MoveStatus tells the caller what AttemptMove did with a request.
type MoveStatus string

const (
	MoveAccepted             MoveStatus = "accepted"
	MoveWon                  MoveStatus = "won"
	MoveTied                 MoveStatus = "tied"
	MoveRejectedCellOccupied MoveStatus = "cell_occupied"
	MoveRejectedGameEnded    MoveStatus = "game_ended"
)

const tieMessage = "It's a tie!"

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameController runs the rounds of one session: turn order, win and tie detection, scores.
// It is not safe for concurrent use.
type GameController struct {
	presenter Presenter
	starter   Starter

	board   *entity.Board
	players [2]*entity.Player
	active  *entity.Player

	status string
	winner entity.Mark
	round  int
}

func NewGameController(presenter Presenter, starter Starter) *GameController {
	if presenter == nil {
		presenter = NopPresenter{}
	}

	if starter == nil {
		starter = StartWithX
	}

	return &GameController{
		presenter: presenter,
		starter:   starter,
		board:     entity.NewBoard(),
	}
}

// StartNewSession creates fresh players with zero scores and begins the first round.
func (that *GameController) StartNewSession(player1, player2 string) {
	that.players = [2]*entity.Player{
		entity.NewPlayer(player1, entity.MarkX),
		entity.NewPlayer(player2, entity.MarkO),
	}
	that.board = entity.NewBoard()
	that.round = 0

	that.presenter.OnScoreChanged(that.players[0].State(), that.players[1].State())

	that.StartNewRound()
}

// StartNewRound clears the board and keeps the scores.
func (that *GameController) StartNewRound() {
	if !that.hasSession() {
		return
	}

	that.board.Reset()
	that.status = entity.StatusOngoing
	that.winner = entity.EmptyCell
	that.round++
	that.active = that.starter(that.players[0], that.players[1])

	that.presenter.OnBoardChanged(that.board.Cells())
	that.presenter.OnTurnChanged(that.active.State())
}

func (that *GameController) AttemptMove(cell int) (MoveStatus, error) {
	if !that.hasSession() {
		return "", apperror.ErrSessionNotStarted
	}

	if that.IsEnded() {
		return MoveRejectedGameEnded, nil
	}

	isEmpty, err := that.board.IsEmpty(cell)
	if err != nil {
		return "", fmt.Errorf("invalid move: %w", err)
	}

	if !isEmpty {
		that.presenter.OnBoardChanged(that.board.Cells())
		return MoveRejectedCellOccupied, nil
	}

	that.board.Place(cell, that.active.Mark())

	status := that.updateGameStatus()

	that.presenter.OnBoardChanged(that.board.Cells())

	return status, nil
}

// updateGameStatus - checks the round result after a placed mark, the winner check always goes first.
func (that *GameController) updateGameStatus() MoveStatus {
	cells := that.board.Cells()

	if winner := checkWinner(cells); winner != entity.EmptyCell {
		that.active.RecordWin()
		that.status = entity.StatusFinished
		that.winner = winner

		that.presenter.OnScoreChanged(that.players[0].State(), that.players[1].State())
		that.presenter.OnRoundEnded(fmt.Sprintf("%s won the game!", that.active.Name()))

		return MoveWon
	}

	if that.board.IsFull() {
		that.status = entity.StatusFinished
		that.winner = entity.MarkTie

		that.presenter.OnRoundEnded(tieMessage)

		return MoveTied
	}

	that.switchPlayerTurn()

	return MoveAccepted
}

func (that *GameController) switchPlayerTurn() {
	that.active = that.playerByMark(that.active.Mark().Opponent())

	that.presenter.OnTurnChanged(that.active.State())
}

func (that *GameController) playerByMark(mark entity.Mark) *entity.Player {
	if that.players[0].Mark() == mark {
		return that.players[0]
	}
	return that.players[1]
}

func (that *GameController) ActivePlayer() entity.PlayerState {
	if that.active == nil {
		return entity.PlayerState{}
	}

	return that.active.State()
}

func (that *GameController) IsEnded() bool {
	return that.status == entity.StatusFinished
}

// Winner returns the winning mark, entity.MarkTie after a tie, or an empty mark while the round goes on.
func (that *GameController) Winner() entity.Mark {
	return that.winner
}

func (that *GameController) Players() (entity.PlayerState, entity.PlayerState) {
	if !that.hasSession() {
		return entity.PlayerState{}, entity.PlayerState{}
	}

	return that.players[0].State(), that.players[1].State()
}

func (that *GameController) Cells() [entity.BoardSize]entity.Mark {
	return that.board.Cells()
}

func (that *GameController) Round() int {
	return that.round
}

func (that *GameController) hasSession() bool {
	return that.players[0] != nil && that.players[1] != nil
}

func checkWinner(board [entity.BoardSize]entity.Mark) entity.Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}
