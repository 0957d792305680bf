package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	t.Run("Keeps the given name and mark", func(t *testing.T) {
		// When: creating a named player
		player := NewPlayer("  Alice ", MarkX)

		// Then: the name is trimmed and the score starts at zero
		assert.Equal(t, PlayerState{Name: "Alice", Mark: MarkX, Score: 0}, player.State())
	})

	t.Run("Falls back to a default name", func(t *testing.T) {
		// When: creating a player with a blank name
		player := NewPlayer("   ", MarkO)

		// Then: the mark based default name is used
		assert.Equal(t, "Player O", player.Name())
		assert.Equal(t, MarkO, player.Mark())
	})
}

func TestPlayer_RecordWin(t *testing.T) {
	// Given: a new player
	player := NewPlayer("Bob", MarkO)

	// When: the player wins twice
	player.RecordWin()
	player.RecordWin()

	// Then: the score is two
	assert.Equal(t, 2, player.CurrentScore())
}

func TestRestorePlayer(t *testing.T) {
	// Given: a stored player state
	state := PlayerState{Name: "Carol", Mark: MarkX, Score: 3}

	// When: restoring it
	player := RestorePlayer(state)

	// Then: name, mark and score are back
	assert.Equal(t, state, player.State())
}
