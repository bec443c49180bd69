package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the live pace dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, a *App) error {
	p := tea.NewProgram(
		newDashboardModel(cmd.Context(), a),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

type dashboardKeys struct {
	Refresh key.Binding
	Update  key.Binding
	Save    key.Binding
	Quit    key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Update:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update totals")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Update, k.Save, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type refreshTickMsg time.Time

type paceLoadedMsg struct {
	resp *app.PaceResponse
	err  error
}

type actualsFormMsg struct {
	values *actualsFormValues
	err    error
}

type actualsSavedMsg struct {
	text string
	err  error
}

// dashboardModel shows the live pace status. It owns the refresh tick: the
// tick is scheduled from Init and re-armed on every tick until the model quits.
type dashboardModel struct {
	ctx  context.Context
	app  *App
	keys dashboardKeys
	help help.Model

	resp    *app.PaceResponse
	err     error
	notice  string
	updated time.Time

	form       *huh.Form
	formValues *actualsFormValues

	width    int
	quitting bool
}

func newDashboardModel(ctx context.Context, a *App) *dashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &dashboardModel{
		ctx:  ctx,
		app:  a,
		keys: newDashboardKeys(),
		help: help.New(),
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadPace(), m.scheduleTick())
}

func (m *dashboardModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.app.refreshInterval(), func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m *dashboardModel) loadPace() tea.Cmd {
	a := m.app
	ctx := m.ctx
	return func() tea.Msg {
		req := app.NewPaceRequest()
		now := a.now()
		req.Now = &now
		resp, err := a.Pace.Status(ctx, req)
		return paceLoadedMsg{resp: resp, err: err}
	}
}

func (m *dashboardModel) openActualsForm() tea.Cmd {
	a := m.app
	ctx := m.ctx
	return func() tea.Msg {
		state, err := a.Actuals.Get(ctx, a.now())
		if err != nil {
			return actualsFormMsg{err: err}
		}
		return actualsFormMsg{values: actualsFormFrom(state)}
	}
}

func (m *dashboardModel) applyActuals(values *actualsFormValues) tea.Cmd {
	a := m.app
	ctx := m.ctx
	return func() tea.Msg {
		picked, packed, err := values.totals()
		if err != nil {
			return actualsSavedMsg{err: err}
		}
		if _, err := a.Actuals.UpdateTotals(ctx, picked, packed, a.now()); err != nil {
			return actualsSavedMsg{err: err}
		}
		return actualsSavedMsg{text: fmt.Sprintf("Totals updated: picked %d, packed %d", picked, packed)}
	}
}

func (m *dashboardModel) saveActuals() tea.Cmd {
	a := m.app
	ctx := m.ctx
	return func() tea.Msg {
		ack, err := a.Actuals.Save(ctx, a.now())
		if err != nil {
			return actualsSavedMsg{err: err}
		}
		return actualsSavedMsg{text: ack.Message()}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, nil

	case refreshTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.loadPace(), m.scheduleTick())

	case paceLoadedMsg:
		m.resp, m.err = msg.resp, msg.err
		if msg.err == nil {
			m.updated = m.app.now()
		}
		return m, nil

	case actualsFormMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.formValues = msg.values
		m.form = newActualsForm(msg.values)
		return m, m.form.Init()

	case actualsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.notice = ""
			return m, nil
		}
		m.err = nil
		m.notice = msg.text
		return m, m.loadPace()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Refresh):
			return m, m.loadPace()
		case key.Matches(keyMsg, m.keys.Update):
			return m, m.openActualsForm()
		case key.Matches(keyMsg, m.keys.Save):
			return m, m.saveActuals()
		}
	}
	return m, nil
}

func (m *dashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		m.notice = "Update cancelled"
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		values := m.formValues
		m.closeForm()
		return m, m.applyActuals(values)
	case huh.StateAborted:
		m.closeForm()
		m.notice = "Update cancelled"
		return m, nil
	}
	return m, cmd
}

func (m *dashboardModel) closeForm() {
	m.form = nil
	m.formValues = nil
}

func (m *dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.form != nil {
		b.WriteString(formatter.Header("Update totals") + "\n\n")
		b.WriteString(m.form.View())
		b.WriteString("\n" + formatter.Dim("enter next • esc cancel") + "\n")
		return b.String()
	}

	switch {
	case m.resp == nil && m.err == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case m.resp != nil:
		b.WriteString(formatter.FormatPaceStatus(m.resp))
		if m.resp.Configured && len(m.resp.Checkpoints) > 0 {
			b.WriteString("\n" + formatter.FormatCheckpoints(m.resp.Checkpoints))
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.notice != "" {
		b.WriteString(formatter.StyleGreen.Render(m.notice) + "\n")
	}
	if !m.updated.IsZero() {
		b.WriteString(formatter.Dim(fmt.Sprintf("Updated %s • refresh every %s",
			m.updated.Format("15:04:05"), m.app.refreshInterval())) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
