package engine

import (
	"hex/experiments/metrics"
	"hex/game"
)

// Input supplies moves for seats played by a person.
type Input interface {
	ReadMove(board *game.Board, player game.Player, legal []game.Move) (game.Move, error)
}

type Runner interface {
	// Run plays a game until a player wins or no legal moves remain
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
