package strategy

import "hex/game"

// humanStrategy marks a seat whose moves are read by the orchestrator from the
// input collaborator. It never chooses a move itself.
type humanStrategy struct{}

func newHuman(game.Rules, *game.Board, game.Player, settings) Strategy {
	return humanStrategy{}
}

func (humanStrategy) Start() game.Move {
	panic("human moves are read from input")
}
