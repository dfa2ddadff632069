package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("parsing mixed symbols", func(t *testing.T) {
		b, err := ParseBoard([]string{"X.O", "1 2 .", "bwB"})

		require.NoError(t, err)
		require.Equal(t, 3, b.Rows())
		require.Equal(t, 3, b.Cols())
		require.Equal(t, Black, b.At(Move{0, 0}))
		require.Equal(t, White, b.At(Move{0, 2}))
		require.Equal(t, Empty, b.At(Move{1, 2}), "Whitespace should be skipped")
		require.Equal(t, []string{"X.O", "XO.", "XOX"}, b.Lines())
	})

	t.Run("rejecting ragged rows", func(t *testing.T) {
		_, err := ParseBoard([]string{"...", ".."})
		require.Error(t, err)
	})

	t.Run("rejecting unknown cells", func(t *testing.T) {
		_, err := ParseBoard([]string{"..Z"})
		require.Error(t, err)
	})

	t.Run("rejecting empty input", func(t *testing.T) {
		_, err := ParseBoard(nil)
		require.Error(t, err)
	})
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(2, 2)
	c := b.Copy()
	c.Set(Move{1, 1}, White)

	require.Equal(t, Empty, b.At(Move{1, 1}), "Copy should not alias the original")
	require.False(t, b.Equal(c))

	next := b.Play(Move{0, 1}, Black)
	require.Equal(t, Empty, b.At(Move{0, 1}), "Play should leave the receiver untouched")
	require.Equal(t, Black, next.At(Move{0, 1}))
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard(2, 3)

	require.True(t, b.InBounds(Move{1, 2}))
	require.False(t, b.InBounds(Move{2, 0}))
	require.False(t, b.InBounds(Move{0, -1}))
	require.Panics(t, func() { b.At(Move{5, 5}) })
	require.Panics(t, func() { NewBoard(0, 3) })
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.False(t, Empty.Valid())
}
