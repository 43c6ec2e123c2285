package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/pkg/pomocli"
)

var (
	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#D0453A")).
			Padding(0, 1)

	popupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D0453A")).
			Padding(1, 3)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F7DC6F"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type popupTickMsg time.Time

type popupStateMsg struct {
	state  *common.StateResponse
	timers *common.TimersResponse
	err    error
}

type popupModel struct {
	client  *pomocli.Client
	state   *common.StateResponse
	boundAt time.Time
	pending bool
	err     error
}

func popupTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return popupTickMsg(t)
	})
}

func (m popupModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.client.State()
		if err != nil {
			return popupStateMsg{err: err}
		}
		timers, err := m.client.Timers()
		if err != nil {
			return popupStateMsg{err: err}
		}
		return popupStateMsg{state: st, timers: timers}
	}
}

func (m popupModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), popupTickCmd())
}

func (m popupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			client := m.client
			return m, func() tea.Msg {
				_, err := client.Start()
				if err != nil {
					return popupStateMsg{err: err}
				}
				return popupTickMsg(time.Now())
			}
		case "x":
			client := m.client
			return m, func() tea.Msg {
				if err := client.Stop(); err != nil {
					return popupStateMsg{err: err}
				}
				return popupTickMsg(time.Now())
			}
		case "n":
			client := m.client
			return m, func() tea.Msg {
				_, err := client.ScheduleNext()
				if err != nil {
					return popupStateMsg{err: err}
				}
				return popupTickMsg(time.Now())
			}
		case "t":
			client := m.client
			return m, func() tea.Msg {
				_ = client.TestSound()
				return nil
			}
		}

	case popupTickMsg:
		return m, tea.Batch(m.fetchCmd(), popupTickCmd())

	case popupStateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.state = msg.state
		m.pending = false
		m.boundAt = time.Time{}
		if msg.timers != nil {
			if t, ok := phaseTimer(msg.timers); ok {
				m.boundAt = t.At
				m.pending = true
			}
		}
	}
	return m, nil
}

func (m popupModel) View() string {
	title := popupTitleStyle.Render("Pomodoro")

	var body string
	switch {
	case m.err != nil:
		body = fmt.Sprintf("daemon unreachable: %v", m.err)
	case m.state == nil:
		body = "loading..."
	case m.state.Phase == "idle":
		body = "idle - press s to start"
	default:
		style := breakStyle
		if m.state.Phase == "focus" {
			style = focusStyle
		}
		countdown := "--:--"
		if m.pending {
			countdown = formatCountdown(m.boundAt, time.Now())
		}
		body = fmt.Sprintf("%s  cycle %d\n\n%s",
			style.Render(m.state.Phase),
			m.state.Cycle,
			countdownStyle.Render(countdown),
		)
	}

	keys := helpStyle.Render("s start · x stop · n next · t sound · q quit")
	return popupBoxStyle.Render(title+"\n\n"+body) + "\n" + keys + "\n"
}

func popup(ctx *cli.Context) error {
	client, err := getClient(ctx, "popup")
	if err != nil {
		return nil
	}
	defer client.Close()

	p := tea.NewProgram(popupModel{client: client})
	if _, err := p.Run(); err != nil {
		printRuntimeErr(ctx, "popup", "tui", err)
	}
	return nil
}
