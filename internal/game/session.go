package game

import (
	"fmt"
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"

	"github.com/rs/zerolog"
)

// Session keeps one word in play across restarts and tallies finished rounds.
type Session struct {
	CurrentGame *Game

	// Aggregate State
	Rounds     int
	Wins       int
	Losses     int
	TotalScore int

	recorded bool // current round already tallied
	log      zerolog.Logger
}

func NewSession(target string, maxTries int, storage scoring.ScoreStorage, log zerolog.Logger) (*Session, error) {
	sc, err := scoring.InitScoring(target, target, storage)
	if err != nil {
		return nil, err
	}

	g, err := NewGame(target, maxTries, *sc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return &Session{
		CurrentGame: g,
		log:         log,
	}, nil
}

// HandleKeyPress forwards a key to the current game and tallies the round
// if that key ended it.
func (s *Session) HandleKeyPress(ch string) state.Snapshot {
	snap := s.CurrentGame.HandleKeyPress(ch)
	s.Update()
	return snap
}

// Update syncs the tally with the current game. Each round counts once.
func (s *Session) Update() {
	if s.CurrentGame == nil || s.recorded {
		return
	}

	snap := s.CurrentGame.Snapshot()
	if !snap.Phase.Terminal() {
		return
	}

	s.recorded = true
	s.Rounds++
	s.TotalScore += snap.Score
	if snap.Phase == state.Won {
		s.Wins++
	} else {
		s.Losses++
	}
	s.log.Info().
		Int("round", s.Rounds).
		Int("wins", s.Wins).
		Int("losses", s.Losses).
		Int("total_score", s.TotalScore).
		Msg("session tally updated")
}

// Restart resets the current game. An unfinished round is abandoned
// without being tallied.
func (s *Session) Restart() state.Snapshot {
	s.recorded = false
	return s.CurrentGame.Reset()
}

func (s *Session) IsOver() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Phase.Terminal()
}

// Board returns the word's score history with its top n rounds.
func (s *Session) Board(n int) scoring.Board {
	return s.CurrentGame.State.Score.Board(n)
}
