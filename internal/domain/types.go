package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the player who moves after p.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "column out of range"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is already over"
	ErrInvalidDimensions Error = "board must be at least 4x4"
)

// MoveResult is what an accepted drop hands back to the presentation.
type MoveResult struct {
	Column int
	Row    int
	Player PlayerID
	Status GameStatus
	Winner PlayerID
}

type Move struct {
	Column int
	Row    int
	Player PlayerID
}
