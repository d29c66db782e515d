package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tint/internal/lang"
)

type pagerModel struct {
	title   string
	format  lang.Format
	content string

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

func newPagerModel(title string, format lang.Format, content string) pagerModel {
	return pagerModel{
		title:   title,
		format:  format,
		content: content,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(1, m.height-1)
		if !m.ready {
			m.vp = viewport.New(m.width, contentHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = contentHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	return m.vp.View() + "\n" + m.statusLine()
}

func (m pagerModel) statusLine() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(appTheme.StatusFG)).
		Background(lipgloss.Color(appTheme.StatusBG))

	left := fmt.Sprintf(" %s  [%s]", m.title, m.format)
	right := fmt.Sprintf("%s  %3.0f%% ", appTheme.Name, m.vp.ScrollPercent()*100)

	avail := m.width - lipgloss.Width(right)
	line := padRightANSI(truncateText(left, avail), avail) + right
	return style.Render(truncateText(line, m.width))
}

func runPager(title string, format lang.Format, content string) error {
	p := tea.NewProgram(newPagerModel(title, format, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}
