package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/jenkins-relay/internal/app"
	"github.com/sevigo/jenkins-relay/internal/core"
)

const banner = `
     ╦╔═╗╔╗╔╦╔═╦╔╗╔╔═╗  ╦═╗╔═╗╦  ╔═╗╦ ╦
     ║║╣ ║║║╠╩╗║║║║╚═╗  ╠╦╝║╣ ║  ╠═╣╚╦╝
    ╚╝╚═╝╝╚╝╩ ╩╩╝╚╝╚═╝  ╩╚═╚═╝╩═╝╩ ╩ ╩
`

type model struct {
	styles  styles
	app     *app.App
	cleanup func()

	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool
	width     int

	history   []string
	triggered int
	failed    int
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "run Smoke API tests for Checkout on staging"
	ta.Focus()
	ta.Prompt = styles.prompt.Render("► ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    styles,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		history:   []string{styles.ascii.Render(banner), "", "⚙ connecting to the language model and Jenkins..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m, m.processCommand(input)
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render("⚠ "+msg.err.Error()),
				m.styles.inactive.Render("Check JENKINS_URL, JENKINS_USER, JENKINS_TOKEN and the LLM settings, then restart."))
			return m, nil
		}
		m.app = msg.app
		m.cleanup = msg.cleanup
		m.appendHistory("", m.styles.success.Render("✓ RELAY ONLINE"), m.styles.inactive.Render("Type /help for the list of commands."))
		return m, nil

	case triggerCompleteMsg:
		m.isLoading = false
		if msg.outcome.Success {
			m.triggered++
			m.appendHistory(m.styles.success.Render(msg.outcome.Message))
		} else {
			m.failed++
			m.appendHistory(m.styles.error.Render(msg.outcome.Message))
		}
		return m, nil

	case previewCompleteMsg:
		m.isLoading = false
		m.appendHistory(m.renderPreview(msg.record, msg.inv))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.styles.header.Width(msg.Width - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.app == nil && m.isLoading {
		return fmt.Sprintf("\n  %s BOOTING RELAY...\n\n", m.spinner.View())
	}

	var statusParts []string
	if m.app != nil && m.app.Cfg != nil {
		cfg := m.app.Cfg
		statusParts = append(statusParts, fmt.Sprintf("🤖 %s (%s)", cfg.AI.Model, cfg.AI.LLMProvider))
		mode := "parameterized"
		if !cfg.Jenkins.Parameterized() {
			mode = "no parameters"
		}
		statusParts = append(statusParts, fmt.Sprintf("JENKINS: %s [%s]", cfg.Jenkins.BaseURL, mode))
	} else {
		statusParts = append(statusParts, m.styles.error.Render("○ OFFLINE"))
	}
	statusParts = append(statusParts,
		m.styles.success.Render(fmt.Sprintf("✓ %d", m.triggered)),
		m.styles.warning.Render(fmt.Sprintf("⚠ %d", m.failed)),
	)
	status := m.styles.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("WORKING...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			"",
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

func (m *model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) processCommand(input string) tea.Cmd {
	m.appendHistory("", m.styles.prompt.Render("► ")+input)

	command, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "/help", "/h":
		m.appendHistory(renderHelp(m.width - 4))
		return nil

	case "/clear":
		m.history = nil
		m.viewport.SetContent("")
		return nil

	case "/quit", "/exit":
		return tea.Quit

	case "/parse", "/p":
		if rest == "" {
			m.appendHistory(m.styles.error.Render("USAGE: /parse [sentence]"))
			return nil
		}
		if !m.ready() {
			return nil
		}
		m.isLoading = true
		m.appendHistory(m.styles.command.Render("→ extracting parameters (dry run)..."))
		return tea.Batch(m.spinner.Tick, previewCmd(m.app, rest))
	}

	if strings.HasPrefix(command, "/") {
		m.appendHistory(m.styles.error.Render("UNKNOWN COMMAND: "+command), m.styles.inactive.Render("Type /help for assistance."))
		return nil
	}

	if !m.ready() {
		return nil
	}
	m.isLoading = true
	m.appendHistory(m.styles.command.Render("→ extracting parameters and triggering Jenkins..."))
	return tea.Batch(m.spinner.Tick, triggerCmd(m.app, input))
}

// ready reports whether the pipeline is available and not busy.
func (m *model) ready() bool {
	if m.app == nil {
		m.appendHistory(m.styles.error.Render("The relay is not initialized."))
		return false
	}
	if m.isLoading {
		m.appendHistory(m.styles.inactive.Render("Still working on the previous command."))
		return false
	}
	return true
}

func (m *model) renderPreview(record core.ParameterRecord, inv core.JobInvocation) string {
	var b strings.Builder
	b.WriteString(m.styles.success.Render("PARAMETERS:"))
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"product", record.Product},
		{"environment", record.Environment},
		{"suite", record.Suite},
		{"type", record.Type},
	} {
		value := m.styles.inactive.Render(core.MissingField)
		if field.value != nil {
			value = m.styles.prompt.Render(*field.value)
		}
		fmt.Fprintf(&b, "\n  %-12s %s", field.name+":", value)
	}

	b.WriteString("\n" + m.styles.success.Render("INVOCATION:"))
	fmt.Fprintf(&b, "\n  job: %s\n  url: %s", inv.JobName, inv.TargetURL)
	if inv.UseParameterizedBuild {
		for _, key := range slices.Sorted(maps.Keys(inv.Parameters)) {
			fmt.Fprintf(&b, "\n  %s=%s", key, inv.Parameters[key])
		}
	} else {
		b.WriteString("\n  " + m.styles.inactive.Render("no build parameters are sent"))
	}
	return b.String()
}
