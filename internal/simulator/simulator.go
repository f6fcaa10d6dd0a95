// Package simulator plays large batches of hands and aggregates the
// hero's results. Hands are independent: every hand gets a fresh table
// and a derived seed, so any single hand can be replayed from its seed.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/feltworks/holdem/internal/bot"
	"github.com/feltworks/holdem/internal/game"
	"github.com/feltworks/holdem/internal/statistics"
)

// Config holds simulation parameters
type Config struct {
	Hands         int
	Opponents     int
	OpponentType  string // call, fold, rand, maniac, tag or mixed
	SmallBlind    int
	BigBlind      int
	StartingChips int
	Seed          int64
	Shards        int
	HandTimeout   time.Duration
	Logger        *log.Logger
}

// Simulator runs batches of simulated hands
type Simulator struct {
	config Config
}

// New creates a simulator, filling in unset config fields
func New(config Config) *Simulator {
	if config.Opponents <= 0 {
		config.Opponents = 5
	}
	if config.OpponentType == "" {
		config.OpponentType = "mixed"
	}
	if config.SmallBlind <= 0 {
		config.SmallBlind = 5
	}
	if config.BigBlind <= 0 {
		config.BigBlind = 10
	}
	if config.StartingChips <= 0 {
		config.StartingChips = 100 * config.BigBlind
	}
	if config.Shards <= 0 {
		config.Shards = 1
	}
	if config.HandTimeout <= 0 {
		config.HandTimeout = 30 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run plays all configured hands, sharded across goroutines, and returns
// the merged statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	shards := s.config.Shards
	if shards > s.config.Hands {
		shards = s.config.Hands
	}
	if shards < 1 {
		shards = 1
	}

	results := make([]*statistics.Statistics, shards)
	g, ctx := errgroup.WithContext(ctx)

	perShard := s.config.Hands / shards
	extra := s.config.Hands % shards
	start := 0
	for i := 0; i < shards; i++ {
		count := perShard
		if i < extra {
			count++
		}
		shard, first := i, start
		start += count

		g.Go(func() error {
			stats, err := s.runShard(ctx, first, count)
			if err != nil {
				return fmt.Errorf("shard %d: %w", shard, err)
			}
			results[shard] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &statistics.Statistics{}
	for _, stats := range results {
		merged.Merge(stats)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation: %w", err)
	}
	return merged, nil
}

func (s *Simulator) runShard(ctx context.Context, first, count int) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	for i := 0; i < count; i++ {
		handIndex := first + i
		handSeed := s.config.Seed + int64(handIndex)
		// Rotate the hero's seat to cancel positional bias
		heroSeat := handIndex % (s.config.Opponents + 1)

		result, err := s.playHandWithTimeout(ctx, handSeed, heroSeat)
		if err != nil {
			return nil, fmt.Errorf("hand %d (seed %d): %w", handIndex+1, handSeed, err)
		}
		stats.Add(result)
	}
	return stats, nil
}

// playHandWithTimeout guards each hand with a deadline so a stuck hand
// surfaces as an error instead of hanging the whole batch.
func (s *Simulator) playHandWithTimeout(ctx context.Context, handSeed int64, heroSeat int) (statistics.HandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.HandTimeout)
	defer cancel()

	type outcome struct {
		result statistics.HandResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := s.playHand(handSeed, heroSeat)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return statistics.HandResult{}, fmt.Errorf("hand did not finish: %w", ctx.Err())
	}
}

func (s *Simulator) playHand(handSeed int64, heroSeat int) (statistics.HandResult, error) {
	rng := rand.New(rand.NewSource(handSeed))
	logger := s.config.Logger

	players := make([]*game.Player, 0, s.config.Opponents+1)
	var hero *game.Player
	opponent := 0
	for seat := 0; seat <= s.config.Opponents; seat++ {
		if seat == heroSeat {
			hero = game.NewPlayer("hero", s.config.StartingChips, bot.NewTagBot(rng, logger))
			players = append(players, hero)
			continue
		}
		opponent++
		agent := s.opponentAgent(opponent, rng, logger)
		players = append(players, game.NewPlayer(fmt.Sprintf("villain%d", opponent), s.config.StartingChips, agent))
	}

	g := game.NewGame(players, s.config.SmallBlind, s.config.BigBlind,
		game.WithRNG(rng), game.WithLogger(logger))

	observer := &handObserver{}
	g.EventBus().Subscribe(observer)

	if _, err := g.PlayHand(); err != nil {
		return statistics.HandResult{}, err
	}

	return statistics.HandResult{
		NetBB:          float64(hero.Chips-s.config.StartingChips) / float64(s.config.BigBlind),
		Seed:           handSeed,
		Position:       heroSeat,
		WentToShowdown: observer.showdown,
		FinalPot:       observer.finalPot,
		StreetReached:  observer.streetReached,
	}, nil
}

func (s *Simulator) opponentAgent(n int, rng *rand.Rand, logger *log.Logger) game.Agent {
	kind := s.config.OpponentType
	if kind == "mixed" {
		mix := []string{"tag", "call", "rand", "maniac", "fold"}
		kind = mix[n%len(mix)]
	}

	switch kind {
	case "fold":
		return bot.NewFoldBot(logger)
	case "call":
		return bot.NewCallBot(logger)
	case "rand":
		return bot.NewRandBot(rng, logger)
	case "maniac":
		return bot.NewManiacBot(rng, logger)
	default:
		return bot.NewTagBot(rng, logger)
	}
}

// handObserver listens to one hand's events to classify its outcome
type handObserver struct {
	streetReached string
	showdown      bool
	finalPot      int
}

func (o *handObserver) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.HandStartEvent:
		o.streetReached = game.Preflop.String()
	case game.StreetChangeEvent:
		o.streetReached = e.Street.String()
	case game.HandSettledEvent:
		o.finalPot = e.Pot
		for _, payout := range e.Payouts {
			if payout.Showdown {
				o.showdown = true
			}
		}
	}
}
