package main

import (
	"flag"
	"fmt"
	"hex/config"
	"hex/engine"
	"hex/experiments"
	"hex/experiments/metrics"
	"hex/game"
	"hex/server"
	"hex/strategy"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a yaml, toml or json config file")
	mode := flag.String("mode", "play", "One of play, experiment or serve")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.SetupLogging(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch *mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = experiment(cfg)
	case "serve":
		err = server.Start(cfg.Addr, server.Defaults{Rules: cfg.Rules, InARow: cfg.InARow, Depth: cfg.Depth, MaxDepth: cfg.MaxDepth})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(*mode + " failed")
	}
}

func play(cfg *config.Config) error {
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}
	black, err := seat(cfg.Black, cfg.BlackURL, cfg, 1)
	if err != nil {
		return err
	}
	white, err := seat(cfg.White, cfg.WhiteURL, cfg, 2)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(rules, game.NewBoard(cfg.Size, cfg.Size), black, white, engine.NewConsoleInput(os.Stdin, os.Stdout))
	e.Observer = func(u engine.Update) {
		fmt.Printf("%d. %s plays %s\n%s\n\n", u.Step, u.Player, u.Move, u.Board)
	}

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == game.Empty {
		fmt.Println("Draw!")
	} else {
		fmt.Printf("Winner: %s\n", winner)
	}
	return nil
}

func seat(name, url string, cfg *config.Config, offset uint64) (engine.Seat, error) {
	kind, err := strategy.ParseKind(name)
	if err != nil {
		return engine.Seat{}, err
	}
	if url != "" {
		return engine.Seat{
			Kind:   kind,
			Remote: engine.NewRemoteAgent(url, cfg.Rules, cfg.InARow, kind.String(), cfg.Depth),
		}, nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return engine.Seat{
		Kind: kind,
		Options: []strategy.Option{
			strategy.WithDepth(cfg.Depth),
			strategy.WithRand(rand.New(rand.NewSource(seed + offset))),
		},
	}, nil
}

func experiment(cfg *config.Config) error {
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}
	setup := experiments.Setup{
		Rules:     rules,
		Rows:      cfg.Size,
		Cols:      cfg.Size,
		Games:     cfg.Games,
		OutputDir: cfg.OutputDir,
	}
	agents := experiments.DefaultAgents
	var records []metrics.GameRecord
	if cfg.Experiment == "depth" {
		agents = experiments.DepthAgents(cfg.Depths)
		records, err = experiments.RunDepthExperiment(setup, cfg.Depths)
	} else {
		records, err = experiments.RunRoundRobin(setup, agents)
	}
	if err != nil {
		return err
	}

	wins := map[[2]int]int{}
	for _, r := range records {
		switch r.Winner {
		case 1:
			wins[[2]int{r.Agent1, r.Agent2}]++
		case 2:
			wins[[2]int{r.Agent2, r.Agent1}]++
		}
	}
	for _, a := range agents {
		for _, b := range agents {
			if a.ID != b.ID {
				fmt.Printf("%s(d=%d) beat %s(d=%d) %d times\n", a.Strategy, a.Depth, b.Strategy, b.Depth, wins[[2]int{a.ID, b.ID}])
			}
		}
	}
	return nil
}
