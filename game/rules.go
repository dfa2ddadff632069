package game

// emptyCells lists the free cells of b in row-major order.
func emptyCells(b *Board) []Move {
	moves := []Move{}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			m := Move{Row: r, Col: c}
			if b.At(m) == Empty {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func isFree(m Move, b *Board) bool {
	return b.InBounds(m) && b.At(m) == Empty
}
