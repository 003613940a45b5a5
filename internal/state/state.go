package state

import (
	"context"
	"errors"
	"fmt"
	"go-hangman/internal/scoring"
	"slices"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultMaxTries is the mistake budget of a classic hangman figure.
const DefaultMaxTries = 6

// Placeholder marks an unrevealed hint cell.
const Placeholder = '_'

var (
	ErrEmptyTarget     = errors.New("target word is empty")
	ErrInvalidTarget   = errors.New("target word must be alphanumeric")
	ErrInvalidMaxTries = errors.New("max tries must be positive")
)

// Phase is the lifecycle position of a single game.
type Phase string

const (
	Playing Phase = "playing"
	Won     Phase = "won"
	Lost    Phase = "lost"
)

// Terminal reports whether no guess can change the game anymore.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}

type State struct {
	Target      []rune
	Hint        []rune
	Tries       []rune // wrong guesses, insertion ordered
	Remaining   []rune // distinct target characters not yet revealed
	LastKey     string // last accepted key, "" when none
	MaxTries    int
	Phase       Phase
	Score       scoring.Scoring
	FSM         *fsm.FSM
	CurrentChar rune // Character being evaluated
	Log         zerolog.Logger
}

// Snapshot is a detached copy of the observable game state.
type Snapshot struct {
	Target    []rune
	Hint      []rune
	Tries     []rune
	Remaining []rune
	LastKey   string
	MaxTries  int
	Phase     Phase
	Score     int
}

// NewState validates the target and builds a fresh state waiting in "start".
func NewState(target string, maxTries int, sc scoring.Scoring, log zerolog.Logger) (*State, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	if maxTries <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxTries, maxTries)
	}

	s := &State{
		Target:   []rune(target),
		MaxTries: maxTries,
		Score:    sc,
		Log:      log,
	}
	s.InitRound()

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s, nil
}

// InitRound derives the per-round fields from the target.
func (s *State) InitRound() {
	s.Hint = InitialHint(s.Target)
	s.Remaining = UniqueCharacters(s.Target)
	s.Tries = []rune{}
	s.LastKey = ""
	s.CurrentChar = 0
	s.Phase = Playing
}

// Reset returns the state to the beginning of a round from any phase.
func (s *State) Reset() {
	s.InitRound()
	if err := s.Score.Reset(); err != nil {
		s.Log.Warn().Err(err).Msg("score history not reloaded")
	}
	s.FSM.SetState("playing")
	s.Log.Debug().Int("target_len", len(s.Target)).Msg("round reset")
}

// Snapshot copies the observable state so callers cannot alias it.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Target:    slices.Clone(s.Target),
		Hint:      slices.Clone(s.Hint),
		Tries:     slices.Clone(s.Tries),
		Remaining: slices.Clone(s.Remaining),
		LastKey:   s.LastKey,
		MaxTries:  s.MaxTries,
		Phase:     s.Phase,
		Score:     s.Score.CurrentScore,
	}
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "playing"},
		{Name: "input", Src: []string{"playing"}, Dst: "normalizing"},

		// Input filtering
		{Name: "reject", Src: []string{"normalizing"}, Dst: "playing"},
		{Name: "evaluate", Src: []string{"normalizing"}, Dst: "evaluating"},

		// Evaluation
		{Name: "miss", Src: []string{"evaluating"}, Dst: "missed"},
		{Name: "hit", Src: []string{"evaluating"}, Dst: "revealing"},
		{Name: "repeat", Src: []string{"evaluating"}, Dst: "playing"},

		// Phase decisions
		{Name: "resume", Src: []string{"missed", "revealing"}, Dst: "playing"},
		{Name: "lose", Src: []string{"missed"}, Dst: "lost"},
		{Name: "win", Src: []string{"revealing"}, Dst: "won"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_normalizing": func(ctx context.Context, e *fsm.Event) {
			raw := ""
			if len(e.Args) > 0 {
				raw, _ = e.Args[0].(string)
			}

			ch, ok := NormalizeKey(raw)
			if !ok {
				s.LastKey = ""
				s.CurrentChar = 0
				e.FSM.Event(ctx, "reject")
				return
			}

			s.CurrentChar = ch
			s.LastKey = string(ch)
			e.FSM.Event(ctx, "evaluate")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			ch := s.CurrentChar
			switch {
			case slices.Contains(s.Remaining, ch):
				e.FSM.Event(ctx, "hit")
			case slices.Contains(s.Target, ch):
				// Already revealed; a second guess costs nothing.
				e.FSM.Event(ctx, "repeat")
			default:
				e.FSM.Event(ctx, "miss")
			}
		},
		"enter_missed": func(ctx context.Context, e *fsm.Event) {
			ch := s.CurrentChar
			if !slices.Contains(s.Tries, ch) {
				s.Tries = append(s.Tries, ch)
				s.Score.ScoreEvent("wrongLetter")
			}
			s.Log.Debug().Str("guess", string(ch)).Int("tries", len(s.Tries)).Msg("miss")

			if len(s.Tries) >= s.MaxTries {
				e.FSM.Event(ctx, "lose")
				return
			}
			e.FSM.Event(ctx, "resume")
		},
		"enter_revealing": func(ctx context.Context, e *fsm.Event) {
			ch := s.CurrentChar
			matches := FindMatches(s.Target, ch)
			s.Hint = ApplyReveals(matches, s.Hint)
			s.Remaining = lo.Without(s.Remaining, ch)
			for range matches {
				s.Score.ScoreEvent("rightLetter")
			}
			s.Log.Debug().Str("guess", string(ch)).Int("revealed", len(matches)).Msg("hit")

			// Judge the hint as it stands after this guess.
			if slices.Equal(s.Hint, s.Target) {
				e.FSM.Event(ctx, "win")
				return
			}
			e.FSM.Event(ctx, "resume")
		},
		"enter_won": func(_ context.Context, _ *fsm.Event) {
			s.Phase = Won
			s.Score.ScoreEvent("wordBonus")
			s.Score.AddTriesBonus(s.MaxTries - len(s.Tries))
			s.finishRound()
		},
		"enter_lost": func(_ context.Context, _ *fsm.Event) {
			s.Phase = Lost
			s.finishRound()
		},
	}
}

func (s *State) finishRound() {
	s.Score.SetOutcome(s.Phase == Won, len(s.Tries))
	if err := s.Score.SaveEntries(); err != nil {
		s.Log.Error().Err(err).Msg("failed to save round score")
	}
	s.Log.Info().
		Str("phase", string(s.Phase)).
		Int("mistakes", len(s.Tries)).
		Int("score", s.Score.CurrentScore).
		Msg("round finished")
}
