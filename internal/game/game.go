package game

import (
	"context"
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"

	"github.com/rs/zerolog"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State
}

// NewGame builds a game for target with the given mistake budget. The game
// is ready for guesses when NewGame returns.
func NewGame(target string, maxTries int, sc scoring.Scoring, log zerolog.Logger) (*Game, error) {
	st, err := state.NewState(target, maxTries, sc, log)
	if err != nil {
		return nil, err
	}
	g := &Game{State: st}
	g.Init()
	return g, nil
}

// Init moves the state machine out of its start state.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), "initGame")
}

// HandleKeyPress evaluates one raw key value and returns the resulting state.
// Keys arriving after the game ended change nothing.
func (g *Game) HandleKeyPress(ch string) state.Snapshot {
	if g.State.Phase.Terminal() {
		return g.State.Snapshot()
	}

	// Every outcome lands on State, so the event error adds nothing here.
	_ = g.State.FSM.Event(context.Background(), "input", ch)
	return g.State.Snapshot()
}

// Reset starts the same word over, whatever the current phase.
func (g *Game) Reset() state.Snapshot {
	g.State.Reset()
	return g.State.Snapshot()
}

func (g *Game) Snapshot() state.Snapshot {
	return g.State.Snapshot()
}
