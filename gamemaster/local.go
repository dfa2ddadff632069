package gamemaster

import (
	"errors"
	"fmt"
	"hex/game"

	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrWrongTurn   = errors.New("not this player's turn")
)

// Referee owns the authoritative board. Every move goes through Play, which
// checks it against the rules before applying it.
type Referee struct {
	rules   game.Rules
	board   *game.Board
	turn    game.Player
	winner  game.Player
	over    bool
	history []game.Move
}

func NewReferee(rules game.Rules, board *game.Board, first game.Player) *Referee {
	if !first.Valid() {
		panic(fmt.Sprintf("invalid starting player %d", first))
	}
	r := &Referee{
		rules: rules,
		board: board.Copy(),
		turn:  first,
	}
	r.checkGameOver()
	return r
}

// Board returns a copy of the current board.
func (r *Referee) Board() *game.Board {
	return r.board.Copy()
}

func (r *Referee) Turn() game.Player {
	return r.turn
}

func (r *Referee) Over() bool {
	return r.over
}

// Winner is Empty while the game runs and after a draw.
func (r *Referee) Winner() game.Player {
	return r.winner
}

func (r *Referee) History() []game.Move {
	return slices.Clone(r.history)
}

// LegalMoves lists the candidate moves that are currently free.
func (r *Referee) LegalMoves() []game.Move {
	moves := []game.Move{}
	for _, m := range r.rules.PossibleMoves(r.board) {
		if r.rules.IsNodeFree(m, r.board) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (r *Referee) Play(player game.Player, move game.Move) error {
	if r.over {
		return ErrGameOver
	}
	if player != r.turn {
		return fmt.Errorf("%w: %s to move, got %s", ErrWrongTurn, r.turn, player)
	}
	if !slices.Contains(r.LegalMoves(), move) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	r.board.Set(move, player)
	r.history = append(r.history, move)
	r.turn = player.Opponent()
	r.checkGameOver()
	return nil
}

func (r *Referee) checkGameOver() {
	if winner := game.Winner(r.rules, r.board); winner != game.Empty {
		r.winner = winner
		r.over = true
		return
	}
	if len(r.LegalMoves()) == 0 { // Draw
		r.over = true
	}
}
