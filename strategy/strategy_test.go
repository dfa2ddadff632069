package strategy

import (
	"hex/experiments/metrics"
	"hex/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, lines ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(lines)
	require.NoError(t, err)
	return b
}

func TestParseKind(t *testing.T) {
	t.Run("resolving registered names", func(t *testing.T) {
		for _, name := range Names() {
			kind, err := ParseKind(name)
			require.NoError(t, err)
			require.Equal(t, name, kind.String())
		}

		kind, err := ParseKind("  MiniMax ")
		require.NoError(t, err)
		require.Equal(t, MiniMax, kind, "Lookup should ignore case and padding")
	})

	t.Run("rejecting unknown names", func(t *testing.T) {
		_, err := ParseKind("mcts")
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("only human is interactive", func(t *testing.T) {
		require.True(t, Human.Interactive())
		require.False(t, Random.Interactive())
		require.False(t, MiniMax.Interactive())
		require.Equal(t, []string{"human", "random", "minimax"}, Names())
	})
}

func TestNew(t *testing.T) {
	rules := game.NewConnect(3)
	b := game.NewBoard(3, 3)

	require.IsType(t, &randomStrategy{}, New(Random, rules, b, game.Black))
	require.IsType(t, &miniMaxStrategy{}, New(MiniMax, rules, b, game.Black))
	require.IsType(t, humanStrategy{}, New(Human, rules, b, game.Black))

	require.Panics(t, func() { New(Kind(9), rules, b, game.Black) }, "Unknown kind has no factory")
	require.Panics(t, func() { New(Random, rules, b, game.Empty) }, "Player must be 1 or 2")
	require.Panics(t, func() { New(Human, rules, b, game.Black).Start() }, "Human moves come from input")
}

func TestRandomStart(t *testing.T) {
	rules := game.NewConnect(3)

	t.Run("drawing only legal moves uniformly", func(t *testing.T) {
		b := mustParse(t, "X.O", "OX.", "X.O")
		legal := rules.PossibleMoves(b)
		require.Len(t, legal, 3)

		rng := rand.New(rand.NewSource(1))
		const trials = 30000
		counts := map[game.Move]int{}
		for i := 0; i < trials; i++ {
			move := New(Random, rules, b, game.White, WithRand(rng)).Start()
			counts[move]++
		}

		require.Len(t, counts, len(legal))
		for _, move := range legal {
			require.InDelta(t, 1.0/3, float64(counts[move])/trials, 0.02, "Move %s frequency", move)
		}
	})

	t.Run("seeded runs repeat", func(t *testing.T) {
		b := game.NewBoard(4, 4)
		first := New(Random, rules, b, game.Black, WithRand(rand.New(rand.NewSource(9)))).Start()
		second := New(Random, rules, b, game.Black, WithRand(rand.New(rand.NewSource(9)))).Start()
		require.Equal(t, first, second)
	})

	t.Run("panics without legal moves", func(t *testing.T) {
		b := mustParse(t, "XOX", "XOO", "OXX")
		require.Panics(t, func() { New(Random, rules, b, game.Black).Start() })
	})
}

func TestMiniMaxStart(t *testing.T) {
	rules := game.NewConnect(3)

	t.Run("completing a row", func(t *testing.T) {
		b := mustParse(t, "XX.", "O..", "O..")
		collector := metrics.NewCollector()

		move := New(MiniMax, rules, b, game.Black, WithMetrics(collector)).Start()

		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
		require.Equal(t, game.Empty, b.At(move), "Root board should not be mutated")
		metric := collector.Complete()
		require.Equal(t, 3, metric.Depth, "Default depth should be three plies")
		require.Positive(t, metric.Nodes)
	})

	t.Run("honouring depth and pruning options", func(t *testing.T) {
		b := mustParse(t, "...", "...", "...")
		collector := metrics.NewCollector()

		New(MiniMax, rules, b, game.Black, WithDepth(2), WithoutPruning(), WithMetrics(collector)).Start()

		metric := collector.Complete()
		require.Equal(t, 2, metric.Depth)
		require.False(t, metric.Pruning)
		require.Equal(t, 1+9+9*8, metric.Nodes, "Unpruned depth 2 search visits every node")
	})

	t.Run("panics on a decided board", func(t *testing.T) {
		b := mustParse(t, "XXX", "OO.", "...")
		require.Panics(t, func() { New(MiniMax, rules, b, game.Black).Start() })
	})
}
