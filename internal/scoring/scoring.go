package scoring

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"time"
)

// Scoring tracks the score of one hangman round and files the finished
// round with the session's ScoreStorage.
type Scoring struct {
	// public
	CurrentScore int
	HitCount     int
	ErrorCount   int
	// private
	storage    ScoreStorage // The interface for loading/saving scores.
	history    ScoreHistory
	scoreTable map[string]int
	wordHash   string
	title      string
	saved      bool // current round already filed
}

// InitScoring creates a Scoring for the given target word and loads the
// rounds already played on it from storage.
func InitScoring(target string, title string, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		scoreTable: getScoreTable(),
		storage:    storage,
		wordHash:   calculateHash(target),
		title:      title,
	}

	if err := s.loadHistory(); err != nil {
		return nil, err
	}
	s.newCurrentEntry()

	return s, nil
}

func (s *Scoring) loadHistory() error {
	if s.storage == nil {
		return nil
	}
	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load score history: %w", err)
	}

	// Only rounds played on the same word count.
	filteredEntries := []ScoreHistoryEntry{}
	for _, entry := range allEntries {
		if entry.Hash == s.wordHash {
			filteredEntries = append(filteredEntries, entry)
		}
	}

	sort.Slice(filteredEntries, func(i, j int) bool {
		return filteredEntries[i].Score > filteredEntries[j].Score
	})

	s.history.Entries = filteredEntries
	s.history.Attempts = len(filteredEntries)
	s.history.HighScoreEntry = nil
	if len(filteredEntries) > 0 {
		s.history.HighScoreEntry = &filteredEntries[0]
	}
	return nil
}

func (s *Scoring) newCurrentEntry() {
	s.saved = false
	s.history.CurrentScore = &ScoreHistoryEntry{
		Hash:      s.wordHash,
		Score:     s.CurrentScore,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Title:     s.title,
	}
}

// Reset starts a new round on the same word. Rounds saved so far become
// part of the history. If the reload fails the previous history is kept,
// the new round still starts, and the error is returned.
func (s *Scoring) Reset() error {
	s.CurrentScore = 0
	s.HitCount = 0
	s.ErrorCount = 0
	err := s.loadHistory()
	s.newCurrentEntry()
	return err
}

// ScoreEvent updates the score based on a given game event.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "rightLetter":
		s.HitCount++
	case "wrongLetter":
		s.ErrorCount++
	}
	s.CurrentScore += s.scoreTable[event]
	s.syncCurrent()
}

// AddTriesBonus rewards every unused try left when the word was guessed.
func (s *Scoring) AddTriesBonus(unused int) {
	if unused <= 0 {
		return
	}
	s.CurrentScore += unused * s.scoreTable["unusedTry"]
	s.syncCurrent()
}

// SetOutcome stamps the finished round's result on its history entry.
func (s *Scoring) SetOutcome(won bool, mistakes int) {
	if s.history.CurrentScore == nil {
		return
	}
	s.history.CurrentScore.Won = won
	s.history.CurrentScore.Mistakes = mistakes
}

func (s *Scoring) syncCurrent() {
	if s.history.CurrentScore != nil {
		s.history.CurrentScore.Score = s.CurrentScore
	}
}

// SaveEntries appends the finished round to storage.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil || s.storage == nil || s.saved {
		return nil // Nothing to save.
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}

	updatedEntries := make([]ScoreHistoryEntry, 0, len(allEntries)+1)
	updatedEntries = append(updatedEntries, allEntries...)
	updatedEntries = append(updatedEntries, *s.history.CurrentScore)

	if err := s.storage.SaveAll(updatedEntries); err != nil {
		return fmt.Errorf("could not save scores: %w", err)
	}
	s.saved = true
	return nil
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetHighScore() *ScoreHistoryEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotHighScore() bool {
	return s.history.GotHighScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}

// Board is the word's score history as the end screen shows it.
type Board struct {
	Attempts     int                // rounds filed before this one
	HighScore    *ScoreHistoryEntry // nil on a first try
	GotHighScore bool
	Top          []ScoreHistoryEntry
}

// Board summarizes the history with at most n top entries.
func (s *Scoring) Board(n int) Board {
	return Board{
		Attempts:     s.GetAttempts(),
		HighScore:    s.GetHighScore(),
		GotHighScore: s.GotHighScore(),
		Top:          s.GetNScoreEntries(n),
	}
}

// calculateHash keys history by word without keeping the word itself.
func calculateHash(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"rightLetter": 25,
		"wrongLetter": -50,
		"wordBonus":   500,
		"unusedTry":   50,
	}
}
