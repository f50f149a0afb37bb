package ledger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unrot/unrot/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	earnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Bold(true).
			Width(6)

	spentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true).
			Width(6)

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type Model struct {
	viewport viewport.Model
	entries  []models.PointTransaction
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return "\n  No point history yet.\n  Complete a task to start earning."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetEntries replaces the displayed transactions. Entries are expected
// newest first, matching the ledger's own ordering.
func (m *Model) SetEntries(entries []models.PointTransaction) {
	m.entries = entries
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, tx := range m.entries {
		amount := earnedStyle.Render(fmt.Sprintf("+%d", tx.Amount))
		if tx.Kind == models.TransactionSpent {
			amount = spentStyle.Render(fmt.Sprintf("-%d", tx.Amount))
		}

		line := fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(tx.Timestamp.Format("2006-01-02 15:04")),
			amount,
			reasonStyle.Render(tx.Reason),
		)
		b.WriteString(line)
	}
	m.viewport.SetContent(b.String())
}
