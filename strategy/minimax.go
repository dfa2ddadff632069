package strategy

import (
	"hex/game"
	"hex/searcher"
)

type miniMaxStrategy struct {
	root   *game.Board
	player game.Player
	search *searcher.Minimax
}

func newMiniMax(rules game.Rules, board *game.Board, player game.Player, s settings) Strategy {
	options := []searcher.Option{searcher.WithDepth(s.depth), searcher.WithMetrics(s.collector)}
	if !s.pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return &miniMaxStrategy{
		root:   board,
		player: player,
		search: searcher.NewMinimax(rules, options...),
	}
}

func (m *miniMaxStrategy) Start() game.Move {
	move, _ := m.search.FindMove(m.root, m.player)
	if move.IsNone() {
		panic("no legal moves")
	}
	return move
}
