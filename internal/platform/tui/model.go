package tui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reelsim/internal/session"
	"github.com/vovakirdan/reelsim/internal/slot"
)

// phase is the step of the betting loop the player is in.
type phase int

const (
	phaseDeposit phase = iota
	phaseLines
	phaseBet
	phaseSpinning
	phaseResult
	phaseBroke
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	balanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for one interactive betting session.
type Model struct {
	machine slot.Machine
	title   string
	opts    session.Options
	sess    *session.Session

	input textinput.Model
	help  help.Model
	keys  PlayKeyMap
	flat  []slot.Symbol // Pool contents for the spin animation

	phase   phase
	lines   int
	last    session.Outcome
	played  bool
	reels   slot.Grid // Scrambled reels shown while spinning
	frame   int
	notice  string
	warning string // Persistence problem, shown but not fatal
	err     error  // Fatal engine error that ended the session

	width    int
	height   int
	quitting bool
}

// NewModel creates a play model for machine m. The session starts once the
// player enters a deposit.
func NewModel(m slot.Machine, title string, opts session.Options) Model {
	ti := textinput.New()
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "$ "
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return Model{
		machine: m,
		title:   title,
		opts:    opts,
		input:   ti,
		help:    h,
		keys:    DefaultPlayKeyMap(),
		flat:    m.Pool.Flatten(),
		phase:   phaseDeposit,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SpinTickMsg:
		return m.handleSpinTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSpinning:
		return m, nil

	case phaseResult:
		if key.Matches(msg, m.keys.Submit) {
			return m.nextRound(), nil
		}
		return m, nil

	case phaseBroke:
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.submit()
	}

	// Only digits reach the input.
	if msg.Type == tea.KeyRunes && !isDigits(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles enter in one of the input phases.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	n, err := strconv.Atoi(raw)
	if err != nil {
		m.notice = "Please enter a number."
		return m, nil
	}
	m.notice = ""

	switch m.phase {
	case phaseDeposit:
		sess, err := session.New(m.machine, n, m.opts)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidDeposit) {
				return m.abort(err)
			}
			m.notice = "Amount must be greater than 0."
			return m, nil
		}
		m.sess = sess
		m.phase = phaseLines

	case phaseLines:
		if err := m.sess.ValidateLines(n); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.lines = n
		m.phase = phaseBet

	case phaseBet:
		return m.spin(n)
	}

	return m, nil
}

// spin plays the round and starts the reel animation.
func (m Model) spin(bet int) (tea.Model, tea.Cmd) {
	out, err := m.sess.PlayRound(m.lines, bet)
	switch {
	case errors.Is(err, session.ErrPersist):
		m.warning = "Round not saved: " + err.Error()
	case session.IsValidation(err):
		// Rejected bets keep the chosen lines and ask for the bet again.
		m.notice = err.Error()
		return m, nil
	case err != nil:
		return m.abort(err)
	default:
		m.warning = ""
	}

	m.last = out
	m.played = true
	m.phase = phaseSpinning
	m.frame = 0
	m.reels = scrambleGrid(m.flat, m.machine.Rows, m.machine.Cols, rand.IntN)
	return m, spinCmd(spinInterval)
}

// abort ends the program on an error no input can fix.
func (m Model) abort(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// handleSpinTick advances the reel animation.
func (m Model) handleSpinTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseSpinning {
		return m, nil
	}

	m.frame++
	if m.frame >= spinFrames {
		m.phase = phaseResult
		return m, nil
	}

	m.reels = scrambleGrid(m.flat, m.machine.Rows, m.machine.Cols, rand.IntN)
	return m, spinCmd(spinInterval)
}

// nextRound leaves the result screen.
func (m Model) nextRound() Model {
	if m.sess.Exhausted() {
		m.phase = phaseBroke
		return m
	}
	m.phase = phaseLines
	return m
}

// Balance returns the current balance, or 0 before a deposit.
func (m Model) Balance() int {
	if m.sess == nil {
		return 0
	}
	return m.sess.Balance()
}

// Deposit returns the starting deposit, or 0 before a deposit.
func (m Model) Deposit() int {
	if m.sess == nil {
		return 0
	}
	return m.sess.Deposit()
}

// Rounds returns the number of settled rounds.
func (m Model) Rounds() int {
	if m.sess == nil {
		return 0
	}
	return m.sess.Rounds()
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	if m.sess != nil {
		b.WriteString("   ")
		b.WriteString(balanceStyle.Render(fmt.Sprintf("Balance: $%d", m.sess.Balance())))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSpinning:
		b.WriteString(renderBlur(m.reels))
		b.WriteString("\n")
	case phaseResult, phaseBroke:
		b.WriteString(RenderGrid(m.last.Grid, m.last.WinningLines))
		b.WriteString("\n")
		b.WriteString(m.resultText())
	default:
		if m.played {
			b.WriteString(RenderGrid(m.last.Grid, m.last.WinningLines))
			b.WriteString("\n")
		}
	}

	if prompt := m.prompt(); prompt != "" {
		b.WriteString(prompt)
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString(noticeStyle.Render(m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) prompt() string {
	switch m.phase {
	case phaseDeposit:
		return "What would you like to deposit?"
	case phaseLines:
		return fmt.Sprintf("Enter the number of lines to bet on (1-%d)", min(m.machine.MaxLines, m.machine.Rows))
	case phaseBet:
		return fmt.Sprintf("What would you like to bet on each line? ($%d - $%d)", m.machine.MinBet, m.machine.MaxBet)
	}
	return ""
}

func (m Model) resultText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are betting $%d on %d lines. Total bet is equal to: $%d\n",
		m.last.Bet, m.last.Lines, m.last.TotalBet)
	fmt.Fprintf(&b, "You won $%d.\n", m.last.Winnings)
	if len(m.last.WinningLines) > 0 {
		parts := make([]string, len(m.last.WinningLines))
		for i, l := range m.last.WinningLines {
			parts[i] = strconv.Itoa(l)
		}
		fmt.Fprintf(&b, "You won on lines: %s\n", strings.Join(parts, " "))
	}

	if m.phase == phaseBroke {
		b.WriteString(noticeStyle.Render("You're out of money. Press any key to leave."))
	} else {
		b.WriteString(mutedStyle.Render("Press enter to play again (q to cash out)."))
	}
	b.WriteString("\n")
	return b.String()
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}

// Run starts the Bubble Tea program and returns the final model so the
// caller can report the closing balance. An engine error that ended the
// session is returned with the final model.
func Run(m slot.Machine, title string, opts session.Options) (Model, error) {
	model := NewModel(m, title, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}

	fm, ok := final.(Model)
	if !ok {
		return model, nil
	}
	return fm, fm.Err()
}
