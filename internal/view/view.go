// Package view turns a game snapshot into what the terminal shows. Build is
// pure and holds every phase-dependent decision; Render only styles.
package view

import (
	"fmt"
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red for misses and losses
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green for revealed letters and wins
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	figureStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
)

// Display is everything the UI needs to draw one frame.
type Display struct {
	Phase        state.Phase
	Cells        []Cell
	Figure       string
	Tries        []string
	MistakesLeft int
	LastKey      string // "" when the last key was rejected
	Score        int
	Message      string
	ShowRestart  bool

	// Score history for this word.
	Attempt      int // 1 on a first try
	Best         int
	FirstTry     bool
	NewHighScore bool     // won and beat every filed round
	Top          []string // previous best rounds, shown with NewHighScore
}

type Cell struct {
	Text     string
	Revealed bool
}

// Build maps a snapshot and the word's score board to a display model.
func Build(s state.Snapshot, b scoring.Board) Display {
	d := Display{
		Phase:        s.Phase,
		Figure:       Figure(len(s.Tries), s.MaxTries),
		Tries:        lo.Map(s.Tries, func(r rune, _ int) string { return string(r) }),
		MistakesLeft: s.MistakesLeft(),
		LastKey:      s.LastKey,
		Score:        s.Score,
		ShowRestart:  s.Phase.Terminal(),
		Attempt:      b.Attempts + 1,
		FirstTry:     b.HighScore == nil,
	}
	if b.HighScore != nil {
		d.Best = b.HighScore.Score
	}
	if s.Phase == state.Won && b.GotHighScore {
		d.NewHighScore = true
		d.Top = lo.Map(b.Top, func(e scoring.ScoreHistoryEntry, _ int) string {
			return fmt.Sprintf("%d on %s", e.Score, e.Timestamp)
		})
	}

	d.Cells = make([]Cell, len(s.Hint))
	for i, r := range s.Hint {
		d.Cells[i] = Cell{Text: string(r), Revealed: r != state.Placeholder}
	}

	switch s.Phase {
	case state.Won:
		d.Message = fmt.Sprintf("You won! Final score: %d", s.Score)
	case state.Lost:
		d.Message = fmt.Sprintf("You lost! The word was %q.", string(s.Target))
	}
	return d
}

// Figure draws the gallows with as many body parts as the mistakes earn.
// With a budget other than six, parts are spread evenly over the budget.
func Figure(mistakes, maxTries int) string {
	parts := []string{"O", "|", "/", "\\", "/", "\\"}
	stage := 0
	if maxTries > 0 {
		stage = min(mistakes, maxTries) * len(parts) / maxTries
	}

	drawn := make([]string, len(parts))
	for i := range parts {
		drawn[i] = " "
		if i < stage {
			drawn[i] = parts[i]
		}
	}

	head, body, leftArm, rightArm, leftLeg, rightLeg := drawn[0], drawn[1], drawn[2], drawn[3], drawn[4], drawn[5]
	return strings.Join([]string{
		"  ________",
		"  |      |",
		"  |      " + head,
		"  |     " + leftArm + body + rightArm,
		"  |     " + leftLeg + " " + rightLeg,
		"  |",
	}, "\n")
}

// Render styles the display model for the terminal.
func Render(d Display) string {
	var b strings.Builder

	b.WriteString(boldStyle.Render("Hangman"))
	b.WriteString("\n")
	b.WriteString(figureStyle.Render(d.Figure))
	b.WriteString("\n\n")

	cells := make([]string, len(d.Cells))
	for i, c := range d.Cells {
		if c.Revealed {
			cells[i] = greenStyle.Render(c.Text)
		} else {
			cells[i] = dimStyle.Render(c.Text)
		}
	}
	b.WriteString("  " + strings.Join(cells, " "))
	b.WriteString("\n\n")

	if d.ShowRestart {
		style := greenStyle
		if d.Phase == state.Lost {
			style = redStyle
		}
		b.WriteString(style.Render(d.Message))
		b.WriteString("\n")
		if d.NewHighScore {
			b.WriteString(greenStyle.Render("You got a high score!"))
			if len(d.Top) > 0 {
				b.WriteString(fmt.Sprintf(" Top %d previous scores:", len(d.Top)))
				for _, line := range d.Top {
					b.WriteString("\n  * " + line)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("Press enter to play again.")
		return b.String()
	}

	if d.FirstTry {
		b.WriteString("This is your first try with this word! Good luck!\n")
	} else {
		b.WriteString(fmt.Sprintf("Attempt: %d | High score (this word): %d\n", d.Attempt, d.Best))
	}

	lastKey := d.LastKey
	if lastKey == "" {
		lastKey = "-"
	}
	b.WriteString(fmt.Sprintf("You've typed: %s\n", boldStyle.Render(lastKey)))
	b.WriteString(fmt.Sprintf("Tries: %s (%d left)\n", boldStyle.Render(fmt.Sprint(len(d.Tries))), d.MistakesLeft))
	if len(d.Tries) > 0 {
		b.WriteString(redStyle.Render(strings.Join(d.Tries, " ")))
		b.WriteString("\n")
	}
	return b.String()
}
