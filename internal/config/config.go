// Package config loads table and simulation configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root configuration document
type Config struct {
	Table      TableConfig       `hcl:"table,block"`
	Players    []PlayerConfig    `hcl:"player,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Server     *ServerConfig     `hcl:"server,block"`
}

// TableConfig sets the stakes and table rules
type TableConfig struct {
	SmallBlind    int   `hcl:"small_blind"`
	BigBlind      int   `hcl:"big_blind"`
	StartingChips int   `hcl:"starting_chips,optional"`
	MaxHands      int   `hcl:"max_hands,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// PlayerConfig seats one player. Strategy selects a bot type, or "human"
// for an interactive seat.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Chips    int    `hcl:"chips,optional"`
}

// SimulationConfig controls batch simulation runs
type SimulationConfig struct {
	Hands          int    `hcl:"hands"`
	Opponents      int    `hcl:"opponents,optional"`
	OpponentType   string `hcl:"opponent_type,optional"`
	Shards         int    `hcl:"shards,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

// ServerConfig controls the websocket listener for remote players
type ServerConfig struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

// Default returns a playable configuration: a 6-max table of rule bots
// at 5/10 blinds.
func Default() *Config {
	cfg := &Config{
		Table: TableConfig{
			SmallBlind:    5,
			BigBlind:      10,
			StartingChips: 1000,
			MaxHands:      100,
		},
	}
	strategies := []string{"tag", "call", "rand", "maniac", "fold", "tag"}
	for i, strategy := range strategies {
		cfg.Players = append(cfg.Players, PlayerConfig{
			Name:     fmt.Sprintf("bot%d", i+1),
			Strategy: strategy,
		})
	}
	return cfg
}

// Load reads and validates a config file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes and validates HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table.StartingChips == 0 {
		c.Table.StartingChips = 100 * c.Table.BigBlind
	}
	if c.Table.MaxHands == 0 {
		c.Table.MaxHands = 100
	}
	for i := range c.Players {
		if c.Players[i].Chips == 0 {
			c.Players[i].Chips = c.Table.StartingChips
		}
	}
	if c.Simulation != nil {
		if c.Simulation.Opponents == 0 {
			c.Simulation.Opponents = 5
		}
		if c.Simulation.OpponentType == "" {
			c.Simulation.OpponentType = "mixed"
		}
		if c.Simulation.Shards == 0 {
			c.Simulation.Shards = 1
		}
		if c.Simulation.TimeoutSeconds == 0 {
			c.Simulation.TimeoutSeconds = 30
		}
	}
	if c.Server != nil {
		if c.Server.Address == "" {
			c.Server.Address = "localhost"
		}
		if c.Server.Port == 0 {
			c.Server.Port = 8080
		}
		if c.Server.TimeoutSeconds == 0 {
			c.Server.TimeoutSeconds = 30
		}
	}
}

// Validate rejects configurations the engine cannot play
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 || c.Table.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", c.Table.SmallBlind, c.Table.BigBlind)
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d is smaller than small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if len(c.Players) > 0 && len(c.Players) < 2 {
		return fmt.Errorf("a table needs at least 2 players, got %d", len(c.Players))
	}
	seen := make(map[string]bool)
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Chips <= 0 {
			return fmt.Errorf("player %s has no chips", p.Name)
		}
	}
	if c.Simulation != nil && c.Simulation.Hands <= 0 {
		return fmt.Errorf("simulation hands must be positive, got %d", c.Simulation.Hands)
	}
	return nil
}
