package entity

import "time"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Session is the stored form of one hot-seat session: both players, their scores and the current round.
type Session struct {
	ID        string          `json:"id"`
	Board     [BoardSize]Mark `json:"board"`
	Players   []PlayerState   `json:"players"`
	Turn      Mark            `json:"turn"`
	Status    string          `json:"status"`
	Winner    Mark            `json:"winner"`
	Round     int             `json:"round"`
	CreatedAt time.Time       `json:"created_at"`
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Session) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Session) IsTie() bool {
	return that.IsFinished() && that.Winner == MarkTie
}
