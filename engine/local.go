package engine

import (
	"fmt"
	"hex/experiments/metrics"
	"hex/game"
	"hex/gamemaster"
	"hex/strategy"
	"time"

	"github.com/rs/zerolog/log"
)

// Seat describes how one player chooses moves. A seat with a Remote input
// takes its moves from there instead of a local strategy.
type Seat struct {
	Kind    strategy.Kind
	Options []strategy.Option
	Remote  Input
}

type Update struct {
	Step   int
	Player game.Player
	Move   game.Move
	Board  *game.Board
}

var _ Runner = (*Engine)(nil)

type Engine struct {
	rules    game.Rules
	start    *game.Board
	first    game.Player
	seats    map[game.Player]Seat
	input    Input
	Observer func(Update) // Called after every applied move
}

// LocalEngine seats black and white on a copy of board. input may be nil when
// neither seat is interactive.
func LocalEngine(rules game.Rules, board *game.Board, black, white Seat, input Input) *Engine {
	if (needsInput(black) || needsInput(white)) && input == nil {
		panic("human seat needs an input")
	}
	return &Engine{
		rules: rules,
		start: board.Copy(),
		first: game.Black,
		seats: map[game.Player]Seat{
			game.Black: black,
			game.White: white,
		},
		input: input,
	}
}

// Run executes the entire game loop until a winner is found or the board has
// no legal moves left.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee := gamemaster.NewReferee(e.rules, e.start, e.first)
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.first),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s (%s) is starting", e.first, e.seats[e.first].Kind)

	for step := 1; !referee.Over(); step++ {
		player := referee.Turn()
		seat := e.seats[player]
		board := referee.Board()

		move, searchMetric, err := e.choose(seat, board, player, referee.LegalMoves())
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, err
		}

		if err := referee.Play(player, move); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s strategy for %s: %w", seat.Kind, player, err)
		}
		log.Debug().Msgf("step %d: %s plays %s", step, player, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Strategy:     seat.Kind.String(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: searchMetric,
		})
		if e.Observer != nil {
			e.Observer(Update{Step: step, Player: player, Move: move, Board: referee.Board()})
		}
	}

	winner := referee.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.Empty {
		log.Info().Msgf("game ended in a draw after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	}
	return winner, gameMetric, moveMetrics, nil
}

func needsInput(seat Seat) bool {
	return seat.Remote == nil && seat.Kind.Interactive()
}

func (e *Engine) choose(seat Seat, board *game.Board, player game.Player, legal []game.Move) (game.Move, metrics.SearchMetric, error) {
	if seat.Remote != nil {
		start := time.Now()
		move, err := seat.Remote.ReadMove(board, player, legal)
		if err != nil {
			return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("remote move for %s: %w", player, err)
		}
		return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
	}
	if seat.Kind.Interactive() {
		move, err := e.input.ReadMove(board, player, legal)
		if err != nil {
			return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to read move for %s: %w", player, err)
		}
		return move, metrics.SearchMetric{}, nil
	}

	collector := metrics.NewCollector()
	options := append([]strategy.Option{}, seat.Options...)
	options = append(options, strategy.WithMetrics(collector))

	// A fresh strategy per turn, bound to this board only
	move := strategy.New(seat.Kind, e.rules, board, player, options...).Start()
	return move, collector.Complete(), nil
}
