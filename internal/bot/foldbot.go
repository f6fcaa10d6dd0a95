package bot

import (
	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/game"
)

// FoldBot folds to any bet and checks when checking is free. Useful as a
// baseline opponent and for exercising fold-out paths.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a FoldBot
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) GetAction(view game.GameView) (game.Action, int) {
	if view.CallAmount == 0 {
		return game.Check, 0
	}
	f.logger.Debug("fold-bot folding", "callAmount", view.CallAmount)
	return game.Fold, 0
}
