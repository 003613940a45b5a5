package game

import (
	"errors"
	"go-hangman/internal/state"
	"os"
	"testing"
)

func TestLoadTarget_SingleWord(t *testing.T) {
	path := createTempFile(t, "banana\n")
	defer os.Remove(path)

	word, err := LoadTarget(path)
	if err != nil {
		t.Fatalf("LoadTarget failed: %v", err)
	}
	if word != "banana" {
		t.Errorf("Expected 'banana', got %q", word)
	}
}

func TestLoadTarget_CommentsAndBlankLines(t *testing.T) {
	content := `# today's word

   Gopher42

# end`
	path := createTempFile(t, content)
	defer os.Remove(path)

	word, err := LoadTarget(path)
	if err != nil {
		t.Fatalf("LoadTarget failed: %v", err)
	}
	if word != "Gopher42" {
		t.Errorf("Expected 'Gopher42', got %q", word)
	}
}

func TestLoadTarget_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{"empty", "", state.ErrEmptyTarget},
		{"only comments", "# nothing\n\n", state.ErrEmptyTarget},
		{"two lines", "apple\nbanana", ErrMultipleWords},
		{"two words", "apple banana", ErrMultipleWords},
		{"punctuation", "ban-ana", state.ErrInvalidTarget},
	}

	for _, tt := range tests {
		path := createTempFile(t, tt.content)
		_, err := LoadTarget(path)
		os.Remove(path)

		if !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
		}
	}
}

func TestLoadTarget_MissingFile(t *testing.T) {
	_, err := LoadTarget("/nonexistent/word.txt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func createTempFile(t *testing.T, content string) string {
	f, err := os.CreateTemp("", "word_test_*.txt")
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString(content)
	f.Close()
	return f.Name()
}
