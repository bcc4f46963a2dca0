package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsSmallDimensions(t *testing.T) {
	_, err := NewBoard(3, 7)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBoard(6, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	b, err := NewBoard(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 4, b.Columns())
}

func TestFindDropRowMovesUpward(t *testing.T) {
	b, err := NewBoard(DefaultRows, DefaultColumns)
	require.NoError(t, err)

	prev := DefaultRows
	for i := 0; i < DefaultRows; i++ {
		row, ok := b.FindDropRow(3)
		require.True(t, ok)
		assert.Equal(t, DefaultRows-1-i, row)
		assert.Less(t, row, prev)
		prev = row

		placed, err := b.DropDisk(3, Player1)
		require.NoError(t, err)
		assert.Equal(t, row, placed)
	}

	_, ok := b.FindDropRow(3)
	assert.False(t, ok)
	assert.False(t, b.IsValidMove(3))
	assert.True(t, b.IsValidMove(2))
	_, err = b.DropDisk(3, Player2)
	assert.ErrorIs(t, err, ErrColumnFull)
}

func TestFindDropRowOutOfRange(t *testing.T) {
	b, err := NewBoard(DefaultRows, DefaultColumns)
	require.NoError(t, err)

	for _, col := range []int{-1, DefaultColumns, 100} {
		_, ok := b.FindDropRow(col)
		assert.False(t, ok, "column %d", col)
		_, err := b.DropDisk(col, Player1)
		assert.ErrorIs(t, err, ErrInvalidColumn)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := NewBoard(DefaultRows, DefaultColumns)
	require.NoError(t, err)
	_, err = b.DropDisk(0, Player1)
	require.NoError(t, err)

	c := b.Clone()
	_, err = c.DropDisk(0, Player2)
	require.NoError(t, err)

	assert.Equal(t, Empty, b.Cell(4, 0))
	assert.Equal(t, Player2, c.Cell(4, 0))
}

func TestParseBoardRoundTrip(t *testing.T) {
	layout := "" +
		".......\n" +
		".......\n" +
		".......\n" +
		"...O...\n" +
		"..XO...\n" +
		".XXOX..\n"

	b, err := ParseBoard(layout)
	require.NoError(t, err)
	assert.Equal(t, layout, b.String())
	assert.Equal(t, Player1, b.Cell(5, 1))
	assert.Equal(t, Player2, b.Cell(3, 3))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidMoves())
}

func TestIsBoardFull(t *testing.T) {
	full, err := ParseBoard("XOXO\nOXOX\nXOXO\nOXOX")
	require.NoError(t, err)
	assert.True(t, full.IsBoardFull())
	assert.Empty(t, full.ValidMoves())

	partial, err := ParseBoard(".OXO\nOXOX\nXOXO\nOXOX")
	require.NoError(t, err)
	assert.False(t, partial.IsBoardFull())
	assert.Equal(t, []int{0}, partial.ValidMoves())
}

func TestInts(t *testing.T) {
	b, err := ParseBoard("....\n....\n....\nXO..")
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 2, 0, 0},
	}, b.Ints())
}
