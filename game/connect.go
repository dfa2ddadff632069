package game

import "fmt"

// Connect is a k-in-a-row game; k = 3 on a 3x3 board is tic-tac-toe.
type Connect struct {
	K int
}

func NewConnect(k int) Connect {
	if k <= 0 {
		panic(fmt.Sprintf("invalid row length %d", k))
	}
	return Connect{K: k}
}

var connectDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func (Connect) PossibleMoves(b *Board) []Move {
	return emptyCells(b)
}

func (Connect) IsNodeFree(m Move, b *Board) bool {
	return isFree(m, b)
}

func (c Connect) IsGameOver(p Player, b *Board) bool {
	if !p.Valid() {
		return false
	}
	for r := 0; r < b.Rows(); r++ {
		for col := 0; col < b.Cols(); col++ {
			for _, d := range connectDirections {
				if c.runFrom(p, b, r, col, d) {
					return true
				}
			}
		}
	}
	return false
}

func (c Connect) runFrom(p Player, b *Board, r, col int, d [2]int) bool {
	for i := 0; i < c.K; i++ {
		m := Move{Row: r + i*d[0], Col: col + i*d[1]}
		if !b.InBounds(m) || b.At(m) != p {
			return false
		}
	}
	return true
}
