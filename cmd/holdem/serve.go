package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/quartz"

	"github.com/feltworks/holdem/internal/config"
	"github.com/feltworks/holdem/internal/game"
	"github.com/feltworks/holdem/internal/remote"
)

// ServeCmd hosts a table over websockets. Remote clients connect, send a
// join message, and are seated; once enough players have joined the game
// starts and runs to completion.
type ServeCmd struct {
	Players int   `default:"2" help:"Players to wait for before starting"`
	Hands   int   `default:"100" help:"Maximum hands to play"`
	Seed    int64 `help:"RNG seed (0 for random)"`
}

func (cmd *ServeCmd) Run(cli *CLI) error {
	logger := cli.logger()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	address, port, timeout := "localhost", 8080, 30*time.Second
	if cfg.Server != nil {
		address = cfg.Server.Address
		port = cfg.Server.Port
		timeout = time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	}

	seated := make(chan *remote.Agent, cmd.Players)
	server := remote.NewServer(timeout, quartz.NewReal(), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.Handler(func(agent *remote.Agent) {
		select {
		case seated <- agent:
		default:
			logger.Warn("table full, dropping player", "player", agent.Name())
		}
	}))

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", address, port),
		Handler: mux,
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
		}
	}()
	defer httpServer.Close()

	logger.Info("waiting for players", "address", httpServer.Addr, "needed", cmd.Players)

	agents := make([]*remote.Agent, 0, cmd.Players)
	for len(agents) < cmd.Players {
		agents = append(agents, <-seated)
		logger.Info("seated player", "player", agents[len(agents)-1].Name(),
			"seated", len(agents), "needed", cmd.Players)
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	players := make([]*game.Player, len(agents))
	for i, agent := range agents {
		players[i] = game.NewPlayer(agent.Name(), cfg.Table.StartingChips, agent)
	}

	g := game.NewGame(players, cfg.Table.SmallBlind, cfg.Table.BigBlind,
		game.WithRNG(rng), game.WithLogger(logger))
	for _, agent := range agents {
		g.EventBus().Subscribe(agent)
	}

	g.Run(cmd.Hands)

	for _, p := range g.Players() {
		logger.Info("final stack", "player", p.Name, "chips", p.Chips)
	}
	return nil
}
