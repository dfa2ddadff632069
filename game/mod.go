package game

// Player identifies a side. The two players must be exactly 1 and 2 so that
// the opponent of p is 3 - p.
type Player int

const (
	Empty Player = 0
	Black Player = 1
	White Player = 2
)

func (p Player) Opponent() Player {
	return 3 - p
}

func (p Player) Valid() bool {
	return p == Black || p == White
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Rules is implemented by the board/adjacency rules of a game. Searchers only
// ever talk to the board through it.
type Rules interface {
	// PossibleMoves returns the cells worth considering, in a stable order
	PossibleMoves(b *Board) []Move
	IsNodeFree(m Move, b *Board) bool
	// IsGameOver reports whether player has a completed winning configuration
	IsGameOver(p Player, b *Board) bool
}

// Winner returns the player who has won on b, or Empty if nobody has.
func Winner(r Rules, b *Board) Player {
	for _, p := range []Player{Black, White} {
		if r.IsGameOver(p, b) {
			return p
		}
	}
	return Empty
}
