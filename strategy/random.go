package strategy

import (
	"hex/game"

	"golang.org/x/exp/rand"
)

// randomStrategy picks uniformly among the legal moves.
type randomStrategy struct {
	rules  game.Rules
	root   *game.Board
	player game.Player
	rng    *rand.Rand
}

func newRandom(rules game.Rules, board *game.Board, player game.Player, s settings) Strategy {
	return &randomStrategy{rules: rules, root: board, player: player, rng: s.rng}
}

func (r *randomStrategy) Start() game.Move {
	moves := r.rules.PossibleMoves(r.root)
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves[r.rng.Intn(len(moves))]
}
