package searcher

import (
	"hex/experiments/metrics"
	"hex/game"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta search. Every branch plays its move on
// a fresh copy of the board, so the root board is never mutated.
type Minimax struct {
	rules   game.Rules
	depth   int
	pruning bool
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs and searches the full tree.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(rules game.Rules, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		rules:   rules,
		depth:   DefaultDepth,
		pruning: true,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches from state for player and returns the chosen move with its
// score. The move is NoMove when state is already decided for player or has no
// free cell. When every line scores -Inf the first free cell is played.
func (m *Minimax) FindMove(state *game.Board, player game.Player) (game.Move, float64) {
	m.metrics.Start(m.depth, m.pruning)
	score, move := m.Search(state, m.depth, true, math.Inf(-1), math.Inf(1), player)
	if move.IsNone() && m.depth > 0 && !m.rules.IsGameOver(player, state) {
		move = m.firstFree(state)
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("minimax for %s at depth %d chose %s with score %v (%d nodes, %d cutoffs)",
		player, m.depth, move, score, metric.Nodes, metric.Cutoffs)
	return move, score
}

// Search returns the minimax score of state and the move achieving it. Ties
// keep the first move in the rules' enumeration order. A position with no free
// cell scores -Inf when maximizing and +Inf when minimizing, with NoMove.
//
// The side writing the mark depends on maximizing: a maximizing ply marks
// current, a minimizing ply marks current's opponent. current always flips to
// the opponent for the next ply.
func (m *Minimax) Search(state *game.Board, depth int, maximizing bool, alpha, beta float64, current game.Player) (float64, game.Move) {
	m.metrics.AddNode()

	if depth == 0 || m.rules.IsGameOver(current, state) {
		return m.leaf(state, current)
	}

	if maximizing {
		return m.maximize(state, depth, alpha, beta, current)
	}
	return m.minimize(state, depth, alpha, beta, current)
}

func (m *Minimax) maximize(state *game.Board, depth int, alpha, beta float64, current game.Player) (float64, game.Move) {
	maxEval := math.Inf(-1)
	bestMove := game.NoMove

	for _, move := range m.rules.PossibleMoves(state) {
		if !m.rules.IsNodeFree(move, state) {
			continue
		}

		eval, _ := m.Search(state.Play(move, current), depth-1, false, alpha, beta, current.Opponent())
		if eval > maxEval {
			maxEval = eval
			bestMove = move
		}
		alpha = math.Max(alpha, eval)
		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return maxEval, bestMove
}

func (m *Minimax) minimize(state *game.Board, depth int, alpha, beta float64, current game.Player) (float64, game.Move) {
	minEval := math.Inf(1)
	bestMove := game.NoMove

	for _, move := range m.rules.PossibleMoves(state) {
		if !m.rules.IsNodeFree(move, state) {
			continue
		}

		eval, _ := m.Search(state.Play(move, current.Opponent()), depth-1, true, alpha, beta, current.Opponent())
		if eval < minEval {
			minEval = eval
			bestMove = move
		}
		beta = math.Min(beta, eval)
		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return minEval, bestMove
}

func (m *Minimax) leaf(state *game.Board, current game.Player) (float64, game.Move) {
	m.metrics.AddLeaf()
	return float64(Evaluate(m.rules, state, current)), game.NoMove
}

func (m *Minimax) firstFree(state *game.Board) game.Move {
	for _, move := range m.rules.PossibleMoves(state) {
		if m.rules.IsNodeFree(move, state) {
			return move
		}
	}
	return game.NoMove
}
