package game

// scriptedAgent replays a fixed list of actions, then checks or calls
type scriptedAgent struct {
	actions []scriptedAction
	next    int
}

type scriptedAction struct {
	action Action
	amount int
}

func (a *scriptedAgent) GetAction(view GameView) (Action, int) {
	if a.next < len(a.actions) {
		act := a.actions[a.next]
		a.next++
		return act.action, act.amount
	}
	if view.CallAmount == 0 {
		return Check, 0
	}
	return Call, 0
}

// passiveAgent always checks or calls
type passiveAgent struct{}

func (passiveAgent) GetAction(view GameView) (Action, int) {
	if view.CallAmount == 0 {
		return Check, 0
	}
	return Call, 0
}

// foldingAgent always folds
type foldingAgent struct{}

func (foldingAgent) GetAction(view GameView) (Action, int) {
	return Fold, 0
}

func newTable(chips int, agents ...Agent) []*Player {
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank"}
	players := make([]*Player, len(agents))
	for i, agent := range agents {
		players[i] = NewPlayer(names[i], chips, agent)
		players[i].Position = i
	}
	return players
}

// eventRecorder captures every published event for assertions
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) OnEvent(event Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(et EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
