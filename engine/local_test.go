package engine

import (
	"bytes"
	"errors"
	"hex/game"
	"hex/strategy"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func seeded(kind strategy.Kind, seed uint64, options ...strategy.Option) Seat {
	options = append(options, strategy.WithRand(rand.New(rand.NewSource(seed))))
	return Seat{Kind: kind, Options: options}
}

func TestEngineRun(t *testing.T) {
	rules := game.NewConnect(3)

	t.Run("playing random against random to the end", func(t *testing.T) {
		e := LocalEngine(rules, game.NewBoard(3, 3), seeded(strategy.Random, 1), seeded(strategy.Random, 2), nil)
		updates := []Update{}
		e.Observer = func(u Update) { updates = append(updates, u) }

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, int(winner), gameMetric.Winner)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Len(t, updates, len(moveMetrics), "Observer should see every move")
		require.GreaterOrEqual(t, gameMetric.TotalMoves, 5, "No one can win in fewer than five moves")

		last := updates[len(updates)-1].Board
		if winner == game.Empty {
			require.Empty(t, rules.PossibleMoves(last), "A draw fills the board")
		} else {
			require.True(t, rules.IsGameOver(winner, last))
		}
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, "random", mm.Strategy)
			wantPlayer := game.Black
			if i%2 == 1 {
				wantPlayer = game.White
			}
			require.Equal(t, int(wantPlayer), mm.Player, "Players should alternate")
		}
	})

	t.Run("playing minimax against random", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			e := LocalEngine(rules, game.NewBoard(3, 3), seeded(strategy.MiniMax, seed), seeded(strategy.Random, seed), nil)

			_, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err, "seed %d", seed)
			require.Equal(t, "minimax", moveMetrics[0].Strategy)
			require.Equal(t, 3, moveMetrics[0].Depth)
			require.Positive(t, moveMetrics[0].Nodes, "Search metrics should be recorded")
			require.Zero(t, moveMetrics[1].Nodes, "Random moves do not search")
			require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		}
	})

	t.Run("starting board is not modified", func(t *testing.T) {
		board := game.NewBoard(3, 3)
		e := LocalEngine(rules, board, seeded(strategy.Random, 3), seeded(strategy.Random, 4), nil)

		_, _, _, err := e.Run()

		require.NoError(t, err)
		require.Len(t, rules.PossibleMoves(board), 9)
	})

	t.Run("human seat requires input", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(rules, game.NewBoard(3, 3), Seat{Kind: strategy.Human}, seeded(strategy.Random, 1), nil)
		})
	})
}

func TestEngineHumanSeat(t *testing.T) {
	rules := game.NewConnect(3)
	board, err := game.ParseBoard([]string{"XX.", "OO.", "..."})
	require.NoError(t, err)

	t.Run("reading moves from the console", func(t *testing.T) {
		in := strings.NewReader("nonsense\n0 0\n0,2\n")
		var out bytes.Buffer
		e := LocalEngine(rules, board, Seat{Kind: strategy.Human}, seeded(strategy.Random, 1), NewConsoleInput(in, &out))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, "human", moveMetrics[0].Strategy)
		require.Contains(t, out.String(), "expected two numbers")
		require.Contains(t, out.String(), "(0,0) is not a legal move")
	})

	t.Run("failing when input runs out", func(t *testing.T) {
		e := LocalEngine(rules, board, Seat{Kind: strategy.Human}, seeded(strategy.Random, 1), NewConsoleInput(strings.NewReader(""), io.Discard))

		_, _, _, err := e.Run()

		require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}

func TestParseMove(t *testing.T) {
	move, err := parseMove(" 2, 3 ")
	require.NoError(t, err)
	require.Equal(t, game.Move{Row: 2, Col: 3}, move)

	_, err = parseMove("a 1")
	require.Error(t, err)
	_, err = parseMove("1")
	require.Error(t, err)
}
