package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hiviexd/loved-cli/round"
)

const maxProgressLines = 8

type bannerResultMsg struct {
	Result round.Result
}

type batchDoneMsg struct {
	Results []round.Result
}

type progressModel struct {
	bar    progress.Model
	theme  *Theme
	cancel context.CancelFunc

	total     int
	done      int
	lines     []string
	results   []round.Result
	cancelled bool
	finished  bool
}

func newProgressModel(total int, cancel context.CancelFunc) progressModel {
	return progressModel{
		bar:    progress.New(progress.WithDefaultGradient()),
		theme:  DefaultTheme(),
		cancel: cancel,
		total:  total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Cancel the batch and wait for in-flight banners to land;
			// batchDoneMsg still arrives and quits the program.
			m.cancelled = true
			m.cancel()
		}
		return m, nil

	case bannerResultMsg:
		m.done++
		m.lines = append(m.lines, resultLine(msg.Result, m.theme))
		if len(m.lines) > maxProgressLines {
			m.lines = m.lines[len(m.lines)-maxProgressLines:]
		}
		return m, nil

	case batchDoneMsg:
		m.results = msg.Results
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}

	header := m.theme.TitleStyle.Render("Generating banners") +
		m.theme.MutedStyle.Render(fmt.Sprintf(" %d/%d", m.done, m.total))
	if m.cancelled {
		header += " " + m.theme.WarningStyle.Render("(cancelling)")
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n\n")
	for _, line := range m.lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// runWithProgress drives the batch under a live progress display. The
// returned results are the runner's, in round order.
func runWithProgress(runner *round.Runner, r *round.Round) ([]round.Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newProgressModel(len(r.Beatmapsets), cancel))

	runner.OnResult = func(res round.Result) {
		p.Send(bannerResultMsg{Result: res})
	}

	go func() {
		results := runner.Run(ctx, r)
		p.Send(batchDoneMsg{Results: results})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(progressModel)
	if !ok || !m.finished {
		return nil, fmt.Errorf("progress display ended before the batch finished")
	}
	return m.results, nil
}
