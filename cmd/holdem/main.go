package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"V" help:"Show version"`
	Verbose bool             `short:"v" help:"Verbose logging"`
	Config  string           `short:"c" default:"holdem.hcl" help:"Path to HCL config file"`

	Play     PlayCmd     `cmd:"" help:"Play hands at a local table"`
	Simulate SimulateCmd `cmd:"" help:"Run a batch simulation and report hero win rate"`
	Serve    ServeCmd    `cmd:"" help:"Host a table for remote websocket players"`
}

func (c *CLI) logger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas hold'em table, bots and batch simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
