package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// Mark is the symbol a player puts into a cell.
type Mark string

const (
	MarkX   Mark = "X"
	MarkO   Mark = "O"
	MarkTie Mark = "-"

	EmptyCell Mark = ""
)

const BoardSize = 9

// Board holds the 3x3 grid in row-major order: cells 0..2 are the first row.
type Board struct {
	cells [BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// RestoreBoard rebuilds a board from stored cells.
func RestoreBoard(cells [BoardSize]Mark) *Board {
	return &Board{cells: cells}
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize]Mark {
	return that.cells
}

func (that *Board) IsEmpty(cell int) (bool, error) {
	if cell < 0 || cell >= BoardSize {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, cell)
	}

	return that.cells[cell] == EmptyCell, nil
}

// Place writes the mark without any checks, the caller validates the cell with IsEmpty first.
func (that *Board) Place(cell int, mark Mark) {
	that.cells[cell] = mark
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Mark{}
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsPlayable reports whether the mark can be placed on a board.
func (that Mark) IsPlayable() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}
