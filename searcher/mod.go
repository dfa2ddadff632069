package searcher

import "hex/game"

// Terminal outcomes as seen by the player being evaluated
const (
	Win  = 1
	Loss = -1
	Draw = 0
)

const DefaultDepth = 3

// Evaluate scores a position for current by its terminal outcome only:
// Win if current has won, Loss if the opponent has, Draw otherwise. Positions
// cut off by depth that are not decided score as a Draw.
func Evaluate(rules game.Rules, state *game.Board, current game.Player) int {
	won := rules.IsGameOver(current, state)
	lost := rules.IsGameOver(current.Opponent(), state)

	if won {
		return Win
	} else if lost {
		return Loss
	}
	return Draw
}
