package domain

// Game is the Connect Four engine. It is not safe for concurrent use; callers
// that share one across goroutines serialise access themselves.
type Game struct {
	board         *Board
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	moves         []Move
}

func NewGame(rows, columns int) (*Game, error) {
	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:         board,
		currentPlayer: Player1,
		status:        StatusActive,
		winner:        Empty,
	}, nil
}

// NewDefaultGame returns a 6x7 game.
func NewDefaultGame() *Game {
	g, _ := NewGame(DefaultRows, DefaultColumns)
	return g
}

func (g *Game) CurrentPlayer() PlayerID { return g.currentPlayer }
func (g *Game) Status() GameStatus      { return g.status }
func (g *Game) Winner() PlayerID        { return g.winner }
func (g *Game) MoveCount() int          { return len(g.moves) }
func (g *Game) Rows() int               { return g.board.Rows() }
func (g *Game) Columns() int            { return g.board.Columns() }

// Board returns a copy; mutations do not reach the game.
func (g *Game) Board() *Board { return g.board.Clone() }

func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

func (g *Game) IsFinished() bool {
	return g.status.IsTerminal()
}

// FindDropRow returns the row a piece dropped in column would land on.
func (g *Game) FindDropRow(column int) (int, bool) {
	return g.board.FindDropRow(column)
}

// DropPiece plays the current player's piece in column. A returned error means
// the move was ignored and nothing changed.
func (g *Game) DropPiece(column int) (MoveResult, error) {
	if column < 0 || column >= g.board.Columns() {
		return MoveResult{}, ErrInvalidColumn
	}

	row, ok := g.board.FindDropRow(column)
	if !ok {
		return MoveResult{}, ErrColumnFull
	}

	if g.IsFinished() {
		return MoveResult{}, ErrGameOver
	}

	mover := g.currentPlayer
	if _, err := g.board.DropDisk(column, mover); err != nil {
		return MoveResult{}, err
	}
	g.moves = append(g.moves, Move{Column: column, Row: row, Player: mover})

	switch {
	case CheckWinAt(g.board, row, column, mover):
		g.status = StatusWon
		g.winner = mover
	case CheckTie(g.board):
		g.status = StatusDraw
	default:
		g.currentPlayer = mover.Opponent()
	}

	return MoveResult{
		Column: column,
		Row:    row,
		Player: mover,
		Status: g.status,
		Winner: g.winner,
	}, nil
}

// CheckForWin reports whether the current player has four in a row anywhere.
func (g *Game) CheckForWin() bool {
	return CheckWin(g.board, g.currentPlayer)
}

// CheckForTie reports whether every cell is filled, regardless of a win.
func (g *Game) CheckForTie() bool {
	return CheckTie(g.board)
}
