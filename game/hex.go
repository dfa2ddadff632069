package game

// Hex is played on a rhombus of hexagonal cells. Black wins by joining the top
// and bottom rows, white by joining the left and right columns.
type Hex struct{}

// Six neighbours of a cell in the rhombus layout
var hexNeighbors = [6][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}

func (Hex) PossibleMoves(b *Board) []Move {
	return emptyCells(b)
}

func (Hex) IsNodeFree(m Move, b *Board) bool {
	return isFree(m, b)
}

func (Hex) IsGameOver(p Player, b *Board) bool {
	if !p.Valid() {
		return false
	}

	visited := make([]bool, b.Rows()*b.Cols())
	queue := []Move{}
	// Seed from the player's starting edge
	if p == Black {
		for c := 0; c < b.Cols(); c++ {
			queue = append(queue, Move{Row: 0, Col: c})
		}
	} else {
		for r := 0; r < b.Rows(); r++ {
			queue = append(queue, Move{Row: r, Col: 0})
		}
	}

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		idx := m.Row*b.Cols() + m.Col
		if visited[idx] || b.At(m) != p {
			continue
		}
		visited[idx] = true

		if (p == Black && m.Row == b.Rows()-1) || (p == White && m.Col == b.Cols()-1) {
			return true
		}
		for _, d := range hexNeighbors {
			n := Move{Row: m.Row + d[0], Col: m.Col + d[1]}
			if b.InBounds(n) && !visited[n.Row*b.Cols()+n.Col] {
				queue = append(queue, n)
			}
		}
	}
	return false
}
