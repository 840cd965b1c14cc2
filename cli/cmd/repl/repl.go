package repl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/stamp/cli/cmd"
	"github.com/ardnew/stamp/log"
	"github.com/ardnew/stamp/pkg"
	"github.com/ardnew/stamp/tmpl"
)

const prompt = "➜ "

func helpMessage() string {
	return `
: Commands (prefix with ':'):

  :help     Print this cruft
  :names    List available names and functions
  :clear    Clear screen
  :quit     Exit REPL

Usage:
  Type an expression to evaluate it
  Input containing '{{' is rendered as a template instead
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// Command starts an interactive session for evaluating expressions and
// rendering templates.
type Command struct {
	HistoryFile string `help:"History file path" optional:"" type:"path"`
}

// Run executes the repl command.
func (r *Command) Run(ctx context.Context) error {
	path := r.HistoryFile
	if path == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			path = filepath.Join(dir, pkg.Name, baseHistory)
		}
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "failed to load history",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}

	m := newModel(cmd.NamesFrom(ctx), history)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

// model is the Bubble Tea model for the REPL.
type model struct {
	input      textinput.Model
	history    *History
	names      map[string]any
	candidates []string
	matches    fuzzy.Matches
	historyIdx int
	wordStart  int
	wordEnd    int
	suggIdx    int
}

func newModel(names map[string]any, history *History) model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.TextStyle = inputStyle
	input.Focus()

	return model{
		input:      input,
		history:    history,
		names:      names,
		candidates: candidates(names),
		historyIdx: history.Len(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		return m.recall(-1), nil

	case tea.KeyDown:
		return m.recall(+1), nil

	case tea.KeyTab:
		return m.cycle(+1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	default:
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)
		m = m.refreshMatches()

		return m, cmd
	}
}

// submit evaluates the current line and echoes the result to scrollback.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	echo := promptStyle.Render(prompt) + inputStyle.Render(line)

	_ = m.history.Write(line)

	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	m.matches = nil

	if name, ok := strings.CutPrefix(line, ":"); ok {
		return m.control(strings.TrimSpace(name), echo)
	}

	return m, tea.Println(echo + "\n" + m.evalLine(line))
}

// control dispatches a colon-prefixed REPL command.
func (m model) control(command, echo string) (tea.Model, tea.Cmd) {
	switch command {
	case "help":
		return m, tea.Println(echo + helpMessage())

	case "names":
		return m, tea.Println(
			echo + "\n" + strings.Join(m.candidates, "\n"),
		)

	case "clear":
		return m, tea.ClearScreen

	case "quit", "exit":
		return m, tea.Quit

	default:
		return m, tea.Println(
			echo + "\n" + errorStyle.Render("unknown command: "+command),
		)
	}
}

// evalLine evaluates line as an expression, or renders it as a template when
// it contains a region opener.
func (m model) evalLine(line string) string {
	if strings.Contains(line, "{{") {
		out, err := tmpl.Render(line, m.names)
		if err != nil {
			return errorStyle.Render(err.Error())
		}

		return resultStyle.Render(out)
	}

	result, err := tmpl.Evaluate(line, m.names)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	return resultStyle.Render(tmpl.Stringify(result))
}

// recall moves through history by delta and loads the entry into the input.
func (m model) recall(delta int) model {
	idx := m.historyIdx + delta
	if idx < 0 || idx > m.history.Len() {
		return m
	}

	m.historyIdx = idx

	if idx == m.history.Len() {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history.Get(idx))
		m.input.CursorEnd()
	}

	m.matches = nil

	return m
}

// cycle selects the next or previous completion candidate and splices it
// into the current word.
func (m model) cycle(delta int) model {
	if len(m.matches) == 0 {
		return m
	}

	m.suggIdx = (m.suggIdx + delta + len(m.matches)) % len(m.matches)

	value := m.input.Value()
	chosen := m.matches[m.suggIdx].Str
	value = value[:m.wordStart] + chosen + value[m.wordEnd:]

	m.input.SetValue(value)
	m.input.SetCursor(m.wordStart + len(chosen))
	m.wordEnd = m.wordStart + len(chosen)

	return m
}

// refreshMatches recomputes fuzzy candidates for the word under the cursor.
func (m model) refreshMatches() model {
	word, start, end := wordBounds(m.input.Value(), m.input.Position())

	m.wordStart, m.wordEnd = start, end
	m.suggIdx = 0
	m.matches = matchCandidates(word, m.candidates)

	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if len(m.matches) > 0 {
		b.WriteString(m.candidateBar())
		b.WriteByte('\n')
	}

	return b.String()
}

// candidateBar renders the current fuzzy matches, highlighting the selected
// candidate.
func (m model) candidateBar() string {
	const maxShown = 8

	shown := m.matches
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}

	parts := make([]string, 0, len(shown))

	for i, match := range shown {
		if i == m.suggIdx {
			parts = append(parts, selectedStyle.Render(match.Str))
		} else {
			parts = append(parts, suggestionStyle.Render(match.Str))
		}
	}

	return strings.Join(parts, "  ")
}
