package view

import (
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"
	"strings"
	"testing"
)

func snapshot(hint, tries string, phase state.Phase) state.Snapshot {
	return state.Snapshot{
		Target:    []rune("banana"),
		Hint:      []rune(hint),
		Tries:     []rune(tries),
		Remaining: []rune("n"),
		LastKey:   "a",
		MaxTries:  6,
		Phase:     phase,
		Score:     75,
	}
}

func TestBuild_Playing(t *testing.T) {
	d := Build(snapshot("ba_a_a", "xz", state.Playing), scoring.Board{})

	if d.ShowRestart || d.Message != "" {
		t.Errorf("Playing should not offer a restart: %+v", d)
	}
	if len(d.Cells) != 6 {
		t.Fatalf("Expected 6 cells, got %d", len(d.Cells))
	}
	if !d.Cells[0].Revealed || d.Cells[2].Revealed {
		t.Errorf("Cell reveal flags wrong: %+v", d.Cells)
	}
	if strings.Join(d.Tries, "") != "xz" || d.MistakesLeft != 4 {
		t.Errorf("Tries wrong: %v / %d left", d.Tries, d.MistakesLeft)
	}
}

func TestBuild_Terminal(t *testing.T) {
	won := Build(snapshot("banana", "", state.Won), scoring.Board{})
	if !won.ShowRestart || !strings.Contains(won.Message, "won") {
		t.Errorf("Won display wrong: %+v", won)
	}

	lost := Build(snapshot("ba_a_a", "cdefgh", state.Lost), scoring.Board{})
	if !lost.ShowRestart || !strings.Contains(lost.Message, `"banana"`) {
		t.Errorf("Lost display should reveal the word: %+v", lost)
	}
}

func TestFigure_Stages(t *testing.T) {
	tests := []struct {
		mistakes, maxTries int
		parts              int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{3, 6, 3},
		{6, 6, 6},
		{9, 6, 6},
		{1, 3, 2},
		{3, 3, 6},
		{5, 10, 3},
		{1, 0, 0},
	}

	for _, tt := range tests {
		fig := Figure(tt.mistakes, tt.maxTries)
		if got := countParts(fig); got != tt.parts {
			t.Errorf("Figure(%d, %d) drew %d parts, expected %d\n%s", tt.mistakes, tt.maxTries, got, tt.parts, fig)
		}
	}
}

// countParts counts body characters below the gallows beam and rope.
func countParts(fig string) int {
	lines := strings.Split(fig, "\n")
	n := 0
	for _, line := range lines[2:] {
		body := strings.TrimPrefix(line, "  |")
		n += len(strings.ReplaceAll(body, " ", ""))
	}
	return n
}

func TestRender(t *testing.T) {
	out := Render(Build(snapshot("ba_a_a", "x", state.Playing), scoring.Board{}))
	for _, want := range []string{"Hangman", "You've typed:", "Tries:", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}

	out = Render(Build(snapshot("banana", "", state.Won), scoring.Board{}))
	if !strings.Contains(out, "play again") {
		t.Errorf("Terminal render should offer restart:\n%s", out)
	}
	if strings.Contains(out, "You've typed:") {
		t.Errorf("Terminal render should hide the input panel:\n%s", out)
	}
}

func TestBuild_Board(t *testing.T) {
	best := &scoring.ScoreHistoryEntry{Score: 600, Timestamp: "t1"}
	board := scoring.Board{
		Attempts:     2,
		HighScore:    best,
		GotHighScore: true,
		Top:          []scoring.ScoreHistoryEntry{*best, {Score: 300, Timestamp: "t2"}},
	}

	playing := Build(snapshot("ba_a_a", "", state.Playing), board)
	if playing.FirstTry || playing.Attempt != 3 || playing.Best != 600 {
		t.Errorf("Playing board wrong: %+v", playing)
	}
	if playing.NewHighScore || len(playing.Top) != 0 {
		t.Errorf("Top scores belong to the win screen only: %+v", playing)
	}

	won := Build(snapshot("banana", "", state.Won), board)
	if !won.NewHighScore || len(won.Top) != 2 || won.Top[0] != "600 on t1" {
		t.Errorf("Won board wrong: %+v", won)
	}

	board.GotHighScore = false
	if d := Build(snapshot("banana", "", state.Won), board); d.NewHighScore {
		t.Errorf("No high score expected: %+v", d)
	}

	if d := Build(snapshot("______", "", state.Playing), scoring.Board{}); !d.FirstTry || d.Attempt != 1 {
		t.Errorf("Empty board should be a first try: %+v", d)
	}
}

func TestRender_Board(t *testing.T) {
	out := Render(Build(snapshot("______", "", state.Playing), scoring.Board{}))
	if !strings.Contains(out, "first try") {
		t.Errorf("Expected first-try greeting:\n%s", out)
	}

	best := &scoring.ScoreHistoryEntry{Score: 600, Timestamp: "t1"}
	board := scoring.Board{Attempts: 1, HighScore: best, GotHighScore: true, Top: []scoring.ScoreHistoryEntry{*best}}

	out = Render(Build(snapshot("ba_a_a", "", state.Playing), board))
	if !strings.Contains(out, "Attempt: 2 | High score (this word): 600") {
		t.Errorf("Expected attempt line:\n%s", out)
	}

	out = Render(Build(snapshot("banana", "", state.Won), board))
	for _, want := range []string{"You got a high score!", "Top 1 previous scores:", "* 600 on t1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Win render missing %q:\n%s", want, out)
		}
	}
}
