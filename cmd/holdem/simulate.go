package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/feltworks/holdem/internal/config"
	"github.com/feltworks/holdem/internal/simulator"
)

// SimulateCmd plays a batch of independent hands with the hero rotating
// seats against configured opponents, then prints aggregate win rates.
type SimulateCmd struct {
	Hands     int    `default:"10000" help:"Number of hands to simulate"`
	Opponents int    `default:"5" help:"Number of opponents at the table"`
	Opponent  string `default:"mixed" help:"Opponent type: fold, call, rand, maniac, tag, mixed"`
	Seed      int64  `default:"1" help:"Base RNG seed"`
	Shards    int    `default:"0" help:"Parallel shards (0 = one per CPU)"`
}

func (cmd *SimulateCmd) Run(cli *CLI) error {
	logger := cli.logger()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	shards := cmd.Shards
	if shards <= 0 {
		shards = runtime.NumCPU()
	}

	simCfg := simulator.Config{
		Hands:         cmd.Hands,
		Opponents:     cmd.Opponents,
		OpponentType:  cmd.Opponent,
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StartingChips: cfg.Table.StartingChips,
		Seed:          cmd.Seed,
		Shards:        shards,
		Logger:        logger,
	}
	if cfg.Simulation != nil {
		simCfg.HandTimeout = time.Duration(cfg.Simulation.TimeoutSeconds) * time.Second
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting simulation",
		"hands", cmd.Hands, "opponents", cmd.Opponents, "type", cmd.Opponent,
		"seed", cmd.Seed, "shards", shards)
	started := time.Now()

	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(started)
	logger.Info("simulation complete",
		"elapsed", elapsed.Round(time.Millisecond),
		"handsPerSec", int(float64(stats.Hands)/elapsed.Seconds()))

	fmt.Println(stats.Summary())
	return nil
}
