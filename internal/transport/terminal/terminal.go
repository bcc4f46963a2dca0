// Package terminal plays a hot-seat game on a text console.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/announce"
	"github.com/iamasit07/connect4/internal/service/game"
)

var symbols = map[int]string{
	int(domain.Empty):   ".",
	int(domain.Player1): "X",
	int(domain.Player2): "O",
}

// Console renders server messages as text and signals when the game is over.
type Console struct {
	out    io.Writer
	labels announce.Labels
	mu     sync.Mutex
	over   chan struct{}
	once   sync.Once
}

func NewConsole(out io.Writer, labels announce.Labels) *Console {
	return &Console{out: out, labels: labels, over: make(chan struct{})}
}

func (c *Console) SendMessage(message domain.ServerMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch message.Type {
	case "game_start":
		c.writeBoard(message.Board)
		return c.prompt(domain.PlayerID(message.CurrentTurn))
	case "move_made":
		c.writeBoard(message.Board)
		if message.Status == string(domain.StatusActive) {
			return c.prompt(domain.PlayerID(message.NextTurn))
		}
		return nil
	case "game_over":
		_, err := fmt.Fprintln(c.out, message.Message)
		c.once.Do(func() { close(c.over) })
		return err
	}
	return nil
}

// Over is closed once the result has been announced.
func (c *Console) Over() <-chan struct{} {
	return c.over
}

func (c *Console) writeBoard(board [][]int) {
	if len(board) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteByte('\n')
	for col := range board[0] {
		sb.WriteString(" " + strconv.Itoa(col+1))
	}
	sb.WriteByte('\n')
	for _, row := range board {
		for _, cell := range row {
			sb.WriteString(" " + symbols[cell])
		}
		sb.WriteByte('\n')
	}
	io.WriteString(c.out, sb.String())
}

func (c *Console) prompt(player domain.PlayerID) error {
	_, err := fmt.Fprintf(c.out, "%s (%s), choose a column: ", c.labels.Label(player), symbols[int(player)])
	return err
}

// Run reads one column number per line from in until the game ends, the
// input runs out, or the player types q.
func Run(ctx context.Context, session *game.GameSession, console *Console, in io.Reader) error {
	if err := session.Start(); err != nil {
		return err
	}

	columns := session.Game.Columns()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return nil
		}

		column, err := strconv.Atoi(line)
		if err != nil || column < 1 || column > columns {
			console.mu.Lock()
			fmt.Fprintf(console.out, "Enter a column between 1 and %d, or q to quit: ", columns)
			console.mu.Unlock()
			continue
		}

		res, err := session.HandleColumnSelected(column - 1)
		if err != nil {
			// full column: ask the same player again
			console.mu.Lock()
			console.prompt(session.Game.CurrentPlayer())
			console.mu.Unlock()
			continue
		}
		if res.Status.IsTerminal() {
			select {
			case <-console.Over():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return scanner.Err()
}
