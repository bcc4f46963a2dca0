package domain

// the four line directions; their opposites are covered by scanning both ways
// or by starting from every cell
var directions = [4][2]int{
	{0, 1},  // horizontal →
	{1, 0},  // vertical ↓
	{1, 1},  // diagonal ↘
	{1, -1}, // diagonal ↙
}

// CheckWin scans every cell as the start of a line in each direction and
// reports whether the player owns four in a row anywhere on the board.
func CheckWin(board *Board, player PlayerID) bool {
	if player == Empty {
		return false
	}
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Columns(); col++ {
			for _, d := range directions {
				if lineFrom(board, row, col, d[0], d[1], player) {
					return true
				}
			}
		}
	}
	return false
}

func lineFrom(board *Board, row, col, deltaRow, deltaCol int, player PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		r, c := row+i*deltaRow, col+i*deltaCol
		if !board.InBounds(r, c) || board.Cell(r, c) != player {
			return false
		}
	}
	return true
}

// CheckWinAt only checks lines passing through (row, column). After a drop it
// gives the same answer as CheckWin because any new line must include the new piece.
func CheckWinAt(board *Board, row, column int, player PlayerID) bool {
	if player == Empty || board.Cell(row, column) != player {
		return false
	}
	for _, d := range directions {
		count := 1 +
			board.CountDiskInDirection(row, column, d[0], d[1], player) +
			board.CountDiskInDirection(row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// CheckTie reports a full board. Callers check for a win first.
func CheckTie(board *Board) bool {
	return board.IsBoardFull()
}
