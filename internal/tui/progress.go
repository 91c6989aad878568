package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressAdvanceMsg reports that one more file was processed.
type ProgressAdvanceMsg struct {
	Path string
}

// ProgressFinishMsg stops the progress program.
type ProgressFinishMsg struct{}

// ProgressModel renders a progress bar for bundle writing.
type ProgressModel struct {
	bar     progress.Model
	label   string
	total   int
	done    int
	current string
	final   bool
}

// NewProgressModel creates a progress model for total files.
func NewProgressModel(label string, total int) ProgressModel {
	return ProgressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		label: label,
		total: total,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressAdvanceMsg:
		if m.done < m.total {
			m.done++
		}
		m.current = msg.Path
		return m, nil
	case ProgressFinishMsg:
		m.final = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if w := msg.Width - 40; w > 10 && w < 80 {
			m.bar.Width = w
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	var b strings.Builder
	if m.label != "" {
		b.WriteString(m.label)
		b.WriteString(" ")
	}
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString(CounterStyle.Render(fmt.Sprintf(" %d/%d", m.done, m.total)))
	if m.final {
		b.WriteString(" " + SuccessStyle.Render(SymbolCheck))
	} else if m.current != "" {
		b.WriteString(PathStyle.Render(filepath.Base(m.current)))
	}
	b.WriteString("\n")
	return b.String()
}

// Percent returns completion in the range [0, 1].
func (m ProgressModel) Percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

// Done returns the number of processed files.
func (m ProgressModel) Done() int {
	return m.done
}
