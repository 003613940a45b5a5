package game

import (
	"bufio"
	"errors"
	"fmt"
	"go-hangman/internal/state"
	"os"
	"strings"
)

var ErrMultipleWords = errors.New("word file must hold a single word")

// LoadTarget reads the target word from a file. Blank lines and lines
// starting with '#' are skipped; exactly one word must remain.
func LoadTarget(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open word file %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to scan word file %s: %w", path, err)
	}

	switch len(words) {
	case 0:
		return "", fmt.Errorf("word file %s: %w", path, state.ErrEmptyTarget)
	case 1:
	default:
		return "", fmt.Errorf("word file %s has %d words: %w", path, len(words), ErrMultipleWords)
	}

	if err := state.ValidateTarget(words[0]); err != nil {
		return "", fmt.Errorf("word file %s: %w", path, err)
	}
	return words[0], nil
}
