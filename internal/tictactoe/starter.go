package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	FirstPlayerX      = "x"
	FirstPlayerRandom = "random"
)

// Starter picks the player who moves first in a new round.
type Starter func(player1, player2 *entity.Player) *entity.Player

func StartWithX(player1, _ *entity.Player) *entity.Player {
	return player1
}

func StartRandom(player1, player2 *entity.Player) *entity.Player {
	if rand.Intn(2) == 0 { //nolint: gosec // a coin flip for the first turn
		return player1
	}
	return player2
}

// StarterByName maps the first-player config value to a policy.
func StarterByName(name string) (Starter, error) {
	switch name {
	case FirstPlayerX:
		return StartWithX, nil
	case FirstPlayerRandom, "":
		return StartRandom, nil
	default:
		return nil, fmt.Errorf("unknown first player policy: %q", name)
	}
}
