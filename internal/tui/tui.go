// Package tui is a read-only viewer over a scenario's plan run: a
// scrollable list of admitted plans and rejected candidates, with a
// key to copy the selected item's ID to the system clipboard. It
// never mutates the underlying scenario or re-runs the planner on a
// timer; everything it shows is computed once at startup.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"

	"github.com/tourneyplan/tourneyplan/internal/planner"
	"github.com/tourneyplan/tourneyplan/internal/scenario"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	admittedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// item is one row in the list: either an admitted plan or a rejected
// candidate.
type item struct {
	id       string
	freq     string
	at       time.Time
	admitted bool
}

func (i item) Title() string {
	marker := rejectedStyle.Render("✗ rejected")
	if i.admitted {
		marker = admittedStyle.Render("✓ admitted")
	}
	return fmt.Sprintf("%s  %s", marker, i.freq)
}

func (i item) Description() string {
	return fmt.Sprintf("id=%s  starts=%s", i.id, i.at.Format(time.RFC3339))
}

func (i item) FilterValue() string { return i.id + " " + i.freq }

type keyMap struct {
	Copy key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Copy: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	list   list.Model
	keys   keyMap
	status string
	logger *clog.Logger
}

func newModel(s *scenario.Scenario, strict bool) (model, error) {
	existing := make([]planner.Tournament, len(s.Existing))
	for i, t := range s.Existing {
		existing[i] = t.Tournament
	}
	candidates := make([]planner.Plan, len(s.Candidates))
	for i, p := range s.Candidates {
		candidates[i] = p.Plan
	}

	var admitted []planner.Plan
	if strict {
		out, err := planner.RunStrict(existing, candidates)
		if err != nil {
			return model{}, err
		}
		admitted = out
	} else {
		admitted = planner.Run(existing, candidates)
	}

	admittedIDs := make(map[string]bool, len(admitted))
	for _, id := range candidateIDsFor(admitted, s.Candidates) {
		admittedIDs[id] = true
	}

	items := make([]list.Item, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		items = append(items, item{
			id:       c.ID,
			freq:     c.Plan.Schedule.Freq.String(),
			at:       time.UnixMilli(int64(c.Plan.Schedule.AtInstant)),
			admitted: admittedIDs[c.ID],
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("tourneyplan - %d admitted / %d candidates", len(admitted), len(s.Candidates))
	l.Styles.Title = titleStyle
	l.SetShowHelp(true)

	keys := defaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Copy} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.Copy} }

	return model{
		list:   l,
		keys:   keys,
		logger: clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "tui"}),
	}, nil
}

// candidateIDsFor recovers each admitted plan's scenario-assigned ID.
// Nominal starts (Schedule.AtInstant) aren't unique across candidates:
// several can legitimately share one, as in the stagger-stacking case.
// Matching walks both lists in the relative order Run and RunStrict
// preserve rather than keying by start time.
func candidateIDsFor(out []planner.Plan, candidates []scenario.Plan) []string {
	ids := make([]string, len(out))
	j := 0
	for i, p := range out {
		for j < len(candidates) && !(p.Schedule == candidates[j].Plan.Schedule && p.Duration == candidates[j].Plan.Duration) {
			j++
		}
		if j < len(candidates) {
			ids[i] = candidates[j].ID
			j++
		}
	}
	return ids
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			if it, ok := m.list.SelectedItem().(item); ok {
				if err := clipboard.WriteAll(it.id); err != nil {
					m.status = "copy failed: " + err.Error()
					m.logger.Error("clipboard write failed", "id", it.id, "error", err)
				} else {
					m.status = "copied " + it.id
					m.logger.Debug("copied id to clipboard", "id", it.id)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	footer := ""
	if m.status != "" {
		footer = "\n" + statusStyle.Render(m.status)
	}
	return m.list.View() + footer
}

// Run launches the interactive viewer for a scenario, computing its
// plan run once up front.
func Run(s *scenario.Scenario, strict bool) error {
	m, err := newModel(s, strict)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
