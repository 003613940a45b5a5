package state

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/samber/lo"
)

var keyRe = regexp.MustCompile(`^[a-zA-Z0-9]$`)

// Match is one position of the target holding the guessed character.
type Match struct {
	Char  rune
	Index int
}

// NormalizeKey accepts a raw key value only when it is a single ASCII letter or digit.
func NormalizeKey(raw string) (rune, bool) {
	if !keyRe.MatchString(raw) {
		return 0, false
	}
	return rune(raw[0]), true
}

// ValidateTarget rejects words that could never be completed by NormalizeKey input.
func ValidateTarget(word string) error {
	if word == "" {
		return ErrEmptyTarget
	}
	for i, r := range word {
		if !keyRe.MatchString(string(r)) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidTarget, r, i)
		}
	}
	return nil
}

func InitialHint(word []rune) []rune {
	hint := make([]rune, len(word))
	for i := range hint {
		hint[i] = Placeholder
	}
	return hint
}

// UniqueCharacters returns the distinct characters of seq in first-seen order.
func UniqueCharacters(seq []rune) []rune {
	return lo.Uniq(seq)
}

func FindMatches(word []rune, ch rune) []Match {
	return lo.FilterMap(word, func(r rune, i int) (Match, bool) {
		return Match{Char: r, Index: i}, r == ch
	})
}

// ApplyReveals writes every match into a copy of hint. Out of range matches are skipped.
func ApplyReveals(matches []Match, hint []rune) []rune {
	next := slices.Clone(hint)
	for _, m := range matches {
		if m.Index < 0 || m.Index >= len(next) {
			continue
		}
		next[m.Index] = m.Char
	}
	return next
}

func (a Snapshot) MistakesLeft() int {
	return a.MaxTries - len(a.Tries)
}

// Solved holds exactly when no hint cell is a placeholder.
func (a Snapshot) Solved() bool {
	return len(a.Remaining) == 0
}

// Equal reports whether two snapshots describe the same game position.
func (a Snapshot) Equal(b Snapshot) bool {
	return slices.Equal(a.Target, b.Target) &&
		slices.Equal(a.Hint, b.Hint) &&
		slices.Equal(a.Tries, b.Tries) &&
		sameSet(a.Remaining, b.Remaining) &&
		a.LastKey == b.LastKey &&
		a.MaxTries == b.MaxTries &&
		a.Phase == b.Phase
}

// sameSet compares two duplicate-free rune sets regardless of order.
func sameSet(a, b []rune) bool {
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}
