package announce

import (
	"testing"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	labels := DefaultLabels()

	assert.Equal(t, "Player Pacman won!", labels.Message(domain.StatusWon, domain.Player1))
	assert.Equal(t, "Player Ghost won!", labels.Message(domain.StatusWon, domain.Player2))
	assert.Equal(t, "Tis a tie!", labels.Message(domain.StatusDraw, domain.Empty))
	assert.Empty(t, labels.Message(domain.StatusActive, domain.Empty))
}

func TestLabel(t *testing.T) {
	labels := Labels{Player1: "Red", Player2: "Yellow"}
	assert.Equal(t, "Red", labels.Label(domain.Player1))
	assert.Equal(t, "Yellow", labels.Label(domain.Player2))
	assert.Empty(t, labels.Label(domain.Empty))
	assert.Equal(t, []string{"Red", "Yellow"}, labels.Slice())
}

func TestScheduleWithoutDelayDeliversImmediately(t *testing.T) {
	a := NewAnnouncer(DefaultLabels(), 0)

	var got []string
	timer := a.Schedule(domain.MoveResult{Status: domain.StatusDraw}, func(m string) {
		got = append(got, m)
	})
	assert.Nil(t, timer)
	assert.Equal(t, []string{"Tis a tie!"}, got)
}

func TestScheduleIgnoresActiveGames(t *testing.T) {
	a := NewAnnouncer(DefaultLabels(), 0)
	called := false
	a.Schedule(domain.MoveResult{Status: domain.StatusActive}, func(string) { called = true })
	assert.False(t, called)
}

func TestScheduleWithDelay(t *testing.T) {
	a := NewAnnouncer(DefaultLabels(), 20*time.Millisecond)

	got := make(chan string, 1)
	timer := a.Schedule(domain.MoveResult{Status: domain.StatusWon, Winner: domain.Player2}, func(m string) {
		got <- m
	})
	require.NotNil(t, timer)

	select {
	case m := <-got:
		assert.Equal(t, "Player Ghost won!", m)
	case <-time.After(time.Second):
		t.Fatal("announcement was not delivered")
	}
}

func TestScheduledAnnouncementCanBeStopped(t *testing.T) {
	a := NewAnnouncer(DefaultLabels(), 50*time.Millisecond)

	got := make(chan string, 1)
	timer := a.Schedule(domain.MoveResult{Status: domain.StatusWon, Winner: domain.Player1}, func(m string) {
		got <- m
	})
	require.NotNil(t, timer)
	assert.True(t, timer.Stop())

	select {
	case m := <-got:
		t.Fatalf("unexpected announcement %q", m)
	case <-time.After(150 * time.Millisecond):
	}
}
