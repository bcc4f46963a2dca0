// Package announce turns a finished game into the message shown to the players.
package announce

import (
	"fmt"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
)

const TieMessage = "Tis a tie!"

// Labels are the display names of the two players.
type Labels struct {
	Player1 string
	Player2 string
}

func DefaultLabels() Labels {
	return Labels{Player1: "Pacman", Player2: "Ghost"}
}

func (l Labels) Label(player domain.PlayerID) string {
	switch player {
	case domain.Player1:
		return l.Player1
	case domain.Player2:
		return l.Player2
	}
	return ""
}

func (l Labels) Slice() []string {
	return []string{l.Player1, l.Player2}
}

// Message returns the end-of-game text, or "" while the game is still on.
func (l Labels) Message(status domain.GameStatus, winner domain.PlayerID) string {
	switch status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %s won!", l.Label(winner))
	case domain.StatusDraw:
		return TieMessage
	}
	return ""
}

// Announcer delivers end-of-game messages after a short delay so the last
// piece can be drawn first. The game is already over when the delay starts.
type Announcer struct {
	Labels Labels
	Delay  time.Duration
}

func NewAnnouncer(labels Labels, delay time.Duration) *Announcer {
	return &Announcer{Labels: labels, Delay: delay}
}

// Schedule calls deliver with the message for res once the delay has passed.
// With no delay deliver runs before Schedule returns and the timer is nil; a
// non-terminal result delivers nothing.
func (a *Announcer) Schedule(res domain.MoveResult, deliver func(message string)) *time.Timer {
	message := a.Labels.Message(res.Status, res.Winner)
	if message == "" {
		return nil
	}
	if a.Delay <= 0 {
		deliver(message)
		return nil
	}
	return time.AfterFunc(a.Delay, func() {
		deliver(message)
	})
}
