package game

// HumanAgent bridges a human player into the engine through a prompt
// function supplied by the UI layer. The engine blocks while the prompt
// waits for input; a nil or failing prompt folds so an unattended game
// keeps moving.
type HumanAgent struct {
	promptFunc func(view GameView) (Action, int, error)
}

// NewHumanAgent creates a human agent with the given prompt function
func NewHumanAgent(promptFunc func(view GameView) (Action, int, error)) *HumanAgent {
	return &HumanAgent{promptFunc: promptFunc}
}

func (h *HumanAgent) GetAction(view GameView) (Action, int) {
	if h.promptFunc == nil {
		return Fold, 0
	}
	action, amount, err := h.promptFunc(view)
	if err != nil {
		return Fold, 0
	}
	return action, amount
}
