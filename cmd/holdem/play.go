package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/bot"
	"github.com/feltworks/holdem/internal/config"
	"github.com/feltworks/holdem/internal/display"
	"github.com/feltworks/holdem/internal/game"
)

// PlayCmd runs a local table from the config file. Seats with the
// "human" strategy are prompted on stdin; everything else is a bot.
type PlayCmd struct {
	Hands int   `help:"Number of hands to play (overrides config)"`
	Seed  int64 `help:"RNG seed (overrides config, 0 for random)"`
}

func (cmd *PlayCmd) Run(cli *CLI) error {
	logger := cli.logger()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if len(cfg.Players) < 2 {
		return fmt.Errorf("config seats %d players, need at least 2", len(cfg.Players))
	}

	seed := cfg.Table.Seed
	if cmd.Seed != 0 {
		seed = cmd.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	players := make([]*game.Player, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		agent, err := buildAgent(pc.Strategy, rng, logger)
		if err != nil {
			return fmt.Errorf("player %s: %w", pc.Name, err)
		}
		players = append(players, game.NewPlayer(pc.Name, pc.Chips, agent))
	}

	g := game.NewGame(players, cfg.Table.SmallBlind, cfg.Table.BigBlind,
		game.WithRNG(rng), game.WithLogger(logger))
	g.EventBus().Subscribe(display.NewRenderer(os.Stdout))

	hands := cfg.Table.MaxHands
	if cmd.Hands > 0 {
		hands = cmd.Hands
	}
	g.Run(hands)

	fmt.Println("final stacks:")
	for _, p := range g.Players() {
		fmt.Printf("  %s: $%d\n", p.Name, p.Chips)
	}
	return nil
}

func buildAgent(strategy string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch strategy {
	case "fold":
		return bot.NewFoldBot(logger), nil
	case "call":
		return bot.NewCallBot(logger), nil
	case "rand":
		return bot.NewRandBot(rng, logger), nil
	case "maniac":
		return bot.NewManiacBot(rng, logger), nil
	case "tag":
		return bot.NewTagBot(rng, logger), nil
	case "human":
		return game.NewHumanAgent(promptStdin), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}

// promptStdin asks for an action on the terminal. Accepts "fold",
// "check", "call", "raise <amount>" or "allin".
func promptStdin(view game.GameView) (game.Action, int, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("\nyour cards: %s  board: %s  pot: $%d  to call: $%d\n",
		strings.Join(view.HoleCards, " "),
		strings.Join(view.CommunityCards, " "),
		view.Pot, view.CallAmount)

	for {
		fmt.Printf("action (fold/check/call/raise <amt>/allin)> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return game.Fold, 0, err
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "fold":
			return game.Fold, 0, nil
		case "check":
			return game.Check, 0, nil
		case "call":
			return game.Call, 0, nil
		case "allin":
			return game.AllIn, 0, nil
		case "raise":
			if len(fields) < 2 {
				fmt.Printf("raise needs an amount (minimum $%d)\n", view.MinRaise)
				continue
			}
			amount, err := strconv.Atoi(fields[1])
			if err != nil || amount < view.MinRaise {
				fmt.Printf("invalid amount, minimum raise is $%d\n", view.MinRaise)
				continue
			}
			return game.Raise, amount, nil
		default:
			fmt.Println("unrecognized action")
		}
	}
}
