package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/sleuth/evidence"
	"github.com/katalvlaran/sleuth/explore"
	"github.com/katalvlaran/sleuth/ledger"
	"github.com/katalvlaran/sleuth/mansion"
	"github.com/katalvlaran/sleuth/scenario"
	"github.com/katalvlaran/sleuth/verdict"
)

// phase tracks which screen the session is on.
type phase int

const (
	phaseExplore phase = iota
	phaseAccuse
	phaseDone
)

// transcriptTail is how many narration lines the exploration screen keeps
// in view.
const transcriptTail = 12

// transcriptLog collects narration lines. A pointer field keeps the log
// stable across bubbletea's value-copied model updates.
type transcriptLog struct {
	lines []string
}

func (t *transcriptLog) add(line string) { t.lines = append(t.lines, line) }

func (t *transcriptLog) tail(n int) []string {
	if len(t.lines) <= n {
		return t.lines
	}

	return t.lines[len(t.lines)-n:]
}

// playModel is the bubbletea model for an interactive session: the
// exploration screen, the accusation screen, then the verdict.
type playModel struct {
	scen     *scenario.Scenario
	eng      *explore.Engine
	led      *ledger.Ledger
	ix       *evidence.Index
	log      *transcriptLog
	input    textinput.Model
	phase    phase
	result   *verdict.Result
	closing  string // shown when the judgment ends without a verdict
	width    int
	quitting bool
}

// newPlayModel assembles the game pieces and performs the first visit,
// so the entrance is already on screen at the first render.
func newPlayModel(s *scenario.Scenario) (playModel, error) {
	m, err := s.Mansion()
	if err != nil {
		return playModel{}, err
	}
	ix, err := s.Index()
	if err != nil {
		return playModel{}, err
	}
	led := ledger.New()
	log := &transcriptLog{}

	eng, err := explore.New(m, led, s.ClueAt,
		explore.WithOnEnter(func(r *mansion.Room) {
			log.add(roomStyle.Render("You are in: " + r.Name()))
		}),
		explore.WithOnClue(func(_ *mansion.Room, clue string, recorded bool) {
			log.add(clueStyle.Render(fmt.Sprintf("> Clue found: %q", clue)))
			if recorded {
				log.add("Noted in the detective's ledger.")
			} else {
				log.add(mutedStyle.Render("Already in the ledger."))
			}
		}),
		explore.WithOnNoClue(func(*mansion.Room) {
			log.add(mutedStyle.Render("No apparent clues in this room."))
		}),
		explore.WithOnBlocked(func(_ *mansion.Room, dir explore.Command) {
			side := "left"
			if dir == explore.Right {
				side = "right"
			}
			log.add(warnStyle.Render("There is no room to the " + side + "."))
		}),
		explore.WithOnUnknown(func(*mansion.Room) {
			log.add(warnStyle.Render("Invalid option. Use e, d or s."))
		}),
		explore.WithOnStop(func(*mansion.Room) {
			log.add("Leaving the exploration...")
		}),
	)
	if err != nil {
		return playModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Sr. Verde"
	ti.CharLimit = 64
	ti.Width = 40

	pm := playModel{
		scen:  s,
		eng:   eng,
		led:   led,
		ix:    ix,
		log:   log,
		input: ti,
	}
	pm.eng.Start()

	return pm, nil
}

// Init implements tea.Model.
func (m playModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseExplore:
			return m.updateExplore(msg)
		case phaseAccuse:
			return m.updateAccuse(msg)
		default:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m playModel) updateExplore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "e", "E", "left":
		_ = m.eng.Step(explore.Left)

	case "d", "D", "right":
		_ = m.eng.Step(explore.Right)

	case "s", "S", "esc":
		_ = m.eng.Step(explore.Stop)
		return m.beginJudgment()

	default:
		_ = m.eng.Step(explore.Unknown)
	}

	return m, nil
}

// beginJudgment leaves the exploration screen. With an empty notebook
// there is nothing to accuse with, so the session closes directly.
func (m playModel) beginJudgment() (tea.Model, tea.Cmd) {
	if m.led.Empty() {
		m.closing = "No clues were collected. There are no grounds for an accusation."
		m.phase = phaseDone
		return m, nil
	}
	m.phase = phaseAccuse
	m.input.Focus()

	return m, textinput.Blink
}

func (m playModel) updateAccuse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.closing = "No suspect named. The judgment is closed."
		m.phase = phaseDone
		return m, nil

	case "enter":
		accused := m.input.Value()
		if accused == "" {
			m.closing = "No suspect named. The judgment is closed."
			m.phase = phaseDone
			return m, nil
		}
		res, err := verdict.Judge(m.led, m.ix, accused)
		if err != nil {
			m.closing = err.Error()
		} else {
			m.result = &res
		}
		m.phase = phaseDone
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Detective Quest: the %q case", m.scen.Name)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", m.dividerWidth())))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseExplore:
		for _, line := range m.log.tail(transcriptTail) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(doorHint(m.eng.Current()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("e/← left · d/→ right · s end the exploration · q quit"))

	case phaseAccuse:
		b.WriteString("Clues collected:\n")
		for _, clue := range m.led.InOrder() {
			b.WriteString(" - ")
			b.WriteString(clueStyle.Render(clue))
			b.WriteByte('\n')
		}
		b.WriteString("\nName the suspect you wish to accuse:\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter accuse · esc abort"))

	case phaseDone:
		if m.result != nil {
			b.WriteString(fmt.Sprintf("You accused: %s\n", m.result.Accused))
			b.WriteString(fmt.Sprintf("Clues pointing at %s: %d\n\n", m.result.Accused, m.result.Count))
			if m.result.Verdict == verdict.Valid {
				b.WriteString(verdictValidStyle.Render("VERDICT: The accusation holds! The evidence sustains the case."))
			} else {
				b.WriteString(verdictWeakStyle.Render(fmt.Sprintf(
					"VERDICT: Weak accusation. At least %d clues are needed to convict.", verdict.ConvictionThreshold)))
			}
		} else {
			b.WriteString(warnStyle.Render(m.closing))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("press any key to leave"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m playModel) dividerWidth() int {
	if m.width > 4 {
		return m.width - 2
	}

	return 40
}

// doorHint lists the doors of the current room in command order.
func doorHint(r *mansion.Room) string {
	parts := make([]string, 0, 3)
	if l := r.Left(); l != nil {
		parts = append(parts, fmt.Sprintf("(e) left → %s", l.Name()))
	}
	if rt := r.Right(); rt != nil {
		parts = append(parts, fmt.Sprintf("(d) right → %s", rt.Name()))
	}
	parts = append(parts, "(s) end the exploration")

	return mutedStyle.Render(strings.Join(parts, "   "))
}

// runTUISession plays one case as a full-screen bubbletea program.
func runTUISession(s *scenario.Scenario) error {
	m, err := newPlayModel(s)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()

	return err
}

// Styles

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	roomStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	clueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	verdictValidStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("42"))

	verdictWeakStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
