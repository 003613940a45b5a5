package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go-hangman/internal/config"
	"go-hangman/internal/game"
	"go-hangman/internal/logging"
	"go-hangman/internal/scoring"
	"go-hangman/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the session tally

// topScores is how many previous rounds the win screen lists.
const topScores = 5

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Again   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Again, k.Restart, k.Quit}}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	Restart: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "restart"),
	),
	Again: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play again"),
	),
}

type LocalState struct {
	Session *game.Session
	Help    help.Model
	Log     zerolog.Logger
}

func initialModel(cfg config.Config, log zerolog.Logger) (*LocalState, error) {
	target := cfg.Word
	if cfg.WordFile != "" {
		w, err := game.LoadTarget(cfg.WordFile)
		if err != nil {
			return nil, err
		}
		target = w
	}

	sess, err := game.NewSession(target, cfg.MaxTries, scoring.NewMemoryStorage(), log)
	if err != nil {
		return nil, err
	}

	return &LocalState{
		Session: sess,
		Help:    help.New(),
		Log:     log,
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, keys.Restart):
			s.Session.Restart()
			return s, nil
		case key.Matches(msg, keys.Again) && s.Session.IsOver():
			s.Session.Restart()
			return s, nil
		}

		// Everything else is a guess; the evaluator decides whether it counts.
		s.Session.HandleKeyPress(msg.String())
	}

	return s, nil
}

func (s *LocalState) View() string {
	d := view.Build(s.Session.CurrentGame.Snapshot(), s.Session.Board(topScores))
	display := view.Render(d)

	statusLine := "SCORE: " + fmt.Sprint(d.Score) + " | " +
		"ROUNDS: " + fmt.Sprint(s.Session.Rounds) + " | " +
		"WINS: " + fmt.Sprint(s.Session.Wins) + " | " +
		"LOSSES: " + fmt.Sprint(s.Session.Losses) + " | " +
		"TOTAL: " + fmt.Sprint(s.Session.TotalScore)

	display += "\n" + scoreStyle.Render(statusLine) + "\n"
	display += s.Help.View(keys) + "\n"
	return display
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment.
	maxTries := strictIntFlag(cfg.MaxTries)

	flag.StringVar(&cfg.Word, "word", cfg.Word, "Word to guess")
	flag.StringVar(&cfg.Word, "w", cfg.Word, "Word to guess (shorthand)")

	flag.StringVar(&cfg.WordFile, "file", cfg.WordFile, "Read the word to guess from a file")
	flag.StringVar(&cfg.WordFile, "f", cfg.WordFile, "Read the word to guess from a file (shorthand)")

	flag.Var(&maxTries, "max-tries", "Number of wrong guesses allowed")
	flag.Var(&maxTries, "m", "Number of wrong guesses allowed (shorthand)")

	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file (empty disables logging)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -w, --word=WORD         Word to guess (env HANGMAN_WORD, default banana)\n")
		fmt.Fprintf(os.Stderr, "   -f, --file=PATH         Read the word from a single-word file (env HANGMAN_WORD_FILE)\n")
		fmt.Fprintf(os.Stderr, "   -m, --max-tries=N       Wrong guesses allowed (env HANGMAN_MAX_TRIES, default 6)\n")
		fmt.Fprintf(os.Stderr, "       --log-file=PATH     Log file (env HANGMAN_LOG_FILE, default hangman.log)\n")
		fmt.Fprintf(os.Stderr, "       --log-level=LEVEL   Log level (env HANGMAN_LOG_LEVEL, default info)\n")
		fmt.Fprintf(os.Stderr, "   -h, --help              Show this help message\n")
	}

	flag.Parse()
	cfg.MaxTries = int(maxTries)

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	model, err := initialModel(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize game")
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Printf("Error starting the program: %v\n", err)
	}

	log.Info().
		Int("rounds", model.Session.Rounds).
		Int("wins", model.Session.Wins).
		Int("losses", model.Session.Losses).
		Msg("session ended")
}
