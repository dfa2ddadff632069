package experiments

import (
	"fmt"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 20 // Per match up

type Setup struct {
	Rules     game.Rules
	Rows      int
	Cols      int
	Games     int    // Per match up, NumGames when zero
	OutputDir string // Records are only written when set
}

var DefaultAgents = []metrics.AgentConfig{
	{ID: 1, Strategy: "random", Seed: 1},
	{ID: 2, Strategy: "minimax", Depth: 1, Seed: 2},
	{ID: 3, Strategy: "minimax", Depth: 3, Seed: 3},
}

// RunRoundRobin plays every agent against every other agent, once with each
// side starting.
func RunRoundRobin(setup Setup, agents []metrics.AgentConfig) ([]metrics.GameRecord, error) {
	matchUps := [][]metrics.AgentConfig{}
	for i, a := range agents {
		for j, b := range agents {
			if i != j {
				matchUps = append(matchUps, []metrics.AgentConfig{a, b})
			}
		}
	}
	return runExperiment("round_robin", setup, agents, matchUps)
}

// DepthAgents lists the random baseline (ID 0) followed by one minimax agent
// per depth.
func DepthAgents(depths []int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{{ID: 0, Strategy: "random", Seed: 1}}
	for i, depth := range depths {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: "minimax", Depth: depth, Seed: uint64(i + 2)})
	}
	return configs
}

// RunDepthExperiment pairs a random baseline against minimax at each depth.
func RunDepthExperiment(setup Setup, depths []int) ([]metrics.GameRecord, error) {
	configs := DepthAgents(depths)
	baseline := configs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline}, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", setup, configs, matchUps)
}

func runExperiment(name string, setup Setup, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]metrics.GameRecord, error) {
	numGames := setup.Games
	if numGames <= 0 {
		numGames = NumGames
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			winner, gameMetric, moveMetrics, err := runGame(setup, config1, config2, uint64(count))
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if setup.OutputDir == "" {
		return gameRecords, nil
	}
	if err := store(name, setup.OutputDir, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return gameRecords, nil
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %s records in %s", name, writer.Dir())
	return nil
}

// runGame executes a single game, config1 playing black, and returns the winner
func runGame(setup Setup, config1, config2 metrics.AgentConfig, gameID uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := seat(config1, gameID)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	white, err := seat(config2, gameID)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(setup.Rules, game.NewBoard(setup.Rows, setup.Cols), black, white, nil)
	return e.Run()
}

func seat(config metrics.AgentConfig, gameID uint64) (engine.Seat, error) {
	kind, err := strategy.ParseKind(config.Strategy)
	if err != nil {
		return engine.Seat{}, err
	}
	if kind.Interactive() {
		return engine.Seat{}, fmt.Errorf("agent %d: %s cannot play in experiments", config.ID, kind)
	}
	return engine.Seat{
		Kind: kind,
		Options: []strategy.Option{
			strategy.WithDepth(config.Depth),
			strategy.WithRand(rand.New(rand.NewSource(config.Seed*1000003 + gameID))),
		},
	}, nil
}
