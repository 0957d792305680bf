package entity

import "strings"

// Player keeps its name and mark for the whole session, only the score changes.
type Player struct {
	name  string
	mark  Mark
	score int
}

// PlayerState is a read-only copy of a player used in notifications and storage.
type PlayerState struct {
	Name  string `json:"name"`
	Mark  Mark   `json:"mark"`
	Score int    `json:"score"`
}

func NewPlayer(name string, mark Mark) *Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName(mark)
	}

	return &Player{
		name: name,
		mark: mark,
	}
}

// RestorePlayer rebuilds a player from a stored state, scores included.
func RestorePlayer(state PlayerState) *Player {
	player := NewPlayer(state.Name, state.Mark)
	player.score = state.Score

	return player
}

func DefaultPlayerName(mark Mark) string {
	return "Player " + string(mark)
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Mark {
	return that.mark
}

func (that *Player) RecordWin() {
	that.score++
}

func (that *Player) CurrentScore() int {
	return that.score
}

func (that *Player) State() PlayerState {
	return PlayerState{
		Name:  that.name,
		Mark:  that.mark,
		Score: that.score,
	}
}
