package strategy

import (
	"errors"
	"fmt"
	"hex/experiments/metrics"
	"hex/game"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

// Strategy picks one move for the player it was built for. A Strategy is bound
// to a single board and used for a single Start call.
type Strategy interface {
	Start() game.Move
}

type Kind int

const (
	Human Kind = iota // Moves come from the input collaborator
	Random
	MiniMax
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var kindNames = []string{
	Human:   "human",
	Random:  "random",
	MiniMax: "minimax",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Interactive reports whether moves for k are delegated to external input.
func (k Kind) Interactive() bool {
	return k == Human
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Names lists the registered strategy names in Kind order.
func Names() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames)
	return names
}

type Option func(s *settings)

type settings struct {
	depth     int
	pruning   bool
	rng       *rand.Rand
	collector metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithoutPruning() Option {
	return func(s *settings) {
		s.pruning = false
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.collector = collector
		}
	}
}

type factory func(rules game.Rules, board *game.Board, player game.Player, s settings) Strategy

var factories = map[Kind]factory{
	Human:   newHuman,
	Random:  newRandom,
	MiniMax: newMiniMax,
}

// New builds a strategy of the given kind for player on board.
func New(kind Kind, rules game.Rules, board *game.Board, player game.Player, options ...Option) Strategy {
	build, ok := factories[kind]
	if !ok {
		panic(fmt.Sprintf("no factory for strategy %s", kind))
	}
	if !player.Valid() {
		panic(fmt.Sprintf("invalid player %d", player))
	}

	s := settings{ // Default values
		pruning: true,
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return build(rules, board, player, s)
}
