package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/announce"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, delay time.Duration, out *bytes.Buffer) (*game.GameSession, *Console) {
	t.Helper()
	labels := announce.DefaultLabels()
	console := NewConsole(out, labels)
	sm := game.NewSessionManager(domain.DefaultRows, domain.DefaultColumns, announce.NewAnnouncer(labels, delay))
	session, err := sm.CreateSession(console)
	require.NoError(t, err)
	return session, console
}

func TestRunVerticalWin(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, 0, &out)

	err := Run(context.Background(), session, console, strings.NewReader("1\n2\n1\n2\n1\n2\n1\n3\n"))
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasSuffix(text, "Player Pacman won!\n"), text)
	assert.Contains(t, text, "Pacman (X), choose a column: ")
	assert.Contains(t, text, "Ghost (O), choose a column: ")
	assert.Contains(t, text, ""+
		" 1 2 3 4 5 6 7\n"+
		" . . . . . . .\n"+
		" . . . . . . .\n"+
		" X . . . . . .\n"+
		" X O . . . . .\n"+
		" X O . . . . .\n"+
		" X O . . . . .\n")
	// the trailing 3 is never played
	assert.Equal(t, 7, session.Game.MoveCount())
}

func TestRunWaitsForDelayedAnnouncement(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, 20*time.Millisecond, &out)

	err := Run(context.Background(), session, console, strings.NewReader("4\n4\n5\n5\n6\n6\n7\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "Player Pacman won!\n"))
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, 0, &out)

	err := Run(context.Background(), session, console, strings.NewReader("abc\n0\n8\n1\n"))
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "Enter a column between 1 and 7, or q to quit: "))
	assert.Equal(t, 1, session.Game.MoveCount())
}

func TestRunFullColumnAsksAgain(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, 0, &out)

	err := Run(context.Background(), session, console, strings.NewReader("1\n1\n1\n1\n1\n1\n1\n"))
	require.NoError(t, err)

	assert.Equal(t, 6, session.Game.MoveCount())
	assert.Equal(t, domain.Player1, session.Game.CurrentPlayer())
	assert.True(t, strings.HasSuffix(out.String(), "Pacman (X), choose a column: "))
}

func TestRunQuit(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, 0, &out)

	err := Run(context.Background(), session, console, strings.NewReader("3\nq\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, session.Game.MoveCount())
	assert.False(t, session.IsFinished())
}

func TestRunCancelledWhileAnnouncing(t *testing.T) {
	var out bytes.Buffer
	session, console := newSession(t, time.Hour, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, session, console, strings.NewReader("1\n2\n1\n2\n1\n2\n1\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, session.IsFinished())
	session.Close()
}
