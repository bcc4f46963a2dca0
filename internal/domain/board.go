package domain

import "strings"

// Board is a rows x columns grid. Row 0 is the top row and Rows()-1 the bottom,
// so pieces fall towards higher row indices.
type Board struct {
	rows    int
	columns int
	cells   [][]PlayerID
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows < ToWin || columns < ToWin {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]PlayerID, rows)
	for row := range cells {
		cells[row] = make([]PlayerID, columns)
	}
	return &Board{rows: rows, columns: columns, cells: cells}, nil
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// Cell returns Empty for coordinates outside the board.
func (b *Board) Cell(row, column int) PlayerID {
	if !b.InBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// FindDropRow scans the column from the bottom up and returns the first empty
// row. ok is false when the column is full or out of range.
func (b *Board) FindDropRow(column int) (row int, ok bool) {
	if column < 0 || column >= b.columns {
		return -1, false
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row, true
		}
	}
	return -1, false
}

func (b *Board) IsValidMove(column int) bool {
	_, ok := b.FindDropRow(column)
	return ok
}

// DropDisk places the player's piece at the lowest empty cell of the column.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.columns {
		return -1, ErrInvalidColumn
	}
	row, ok := b.FindDropRow(column)
	if !ok {
		return -1, ErrColumnFull
	}
	b.cells[row][column] = player
	return row, nil
}

// IsBoardFull reports whether every cell holds a piece.
func (b *Board) IsBoardFull() bool {
	for _, cells := range b.cells {
		for _, cell := range cells {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]PlayerID, b.rows)
	for i := range b.cells {
		cells[i] = make([]PlayerID, b.columns)
		copy(cells[i], b.cells[i])
	}
	return &Board{rows: b.rows, columns: b.columns, cells: cells}
}

// ValidMoves lists the columns that still accept a piece.
func (b *Board) ValidMoves() []int {
	moves := []int{}
	for col := 0; col < b.columns; col++ {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// Ints converts the grid to plain ints, top row first, for JSON and rendering.
func (b *Board) Ints() [][]int {
	out := make([][]int, b.rows)
	for i := range b.cells {
		out[i] = make([]int, b.columns)
		for j := range b.cells[i] {
			out[i][j] = int(b.cells[i][j])
		}
	}
	return out
}

// String flattens the board to one line per row using '.', 'X' and 'O'.
func (b *Board) String() string {
	var sb strings.Builder
	for _, cells := range b.cells {
		for _, cell := range cells {
			switch cell {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from the String format. Used to set up positions.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	columns := len(strings.TrimSpace(lines[0]))
	board, err := NewBoard(len(lines), columns)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != columns {
			return nil, ErrInvalidDimensions
		}
		for col, ch := range line {
			switch ch {
			case 'X', '1':
				board.cells[row][col] = Player1
			case 'O', '2':
				board.cells[row][col] = Player2
			}
		}
	}
	return board, nil
}

// this counts the number of disks in a specific direction
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for b.InBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
