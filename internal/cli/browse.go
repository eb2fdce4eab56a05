package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/carquery/pkg/integrations/carquery"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseSource is the part of the client the browser drives.
type browseSource interface {
	GetYearRange(ctx context.Context) (*carquery.YearRange, error)
	GetMakes(ctx context.Context, year int, soldInUSA bool) ([]carquery.Make, error)
	GetModels(ctx context.Context, p carquery.GetModelsParams) ([]carquery.Model, error)
	GetTrims(ctx context.Context, p carquery.GetTrimsParams) ([]carquery.Trim, error)
}

type browseStage int

const (
	stageYears browseStage = iota
	stageMakes
	stageModels
	stageTrims
)

// Messages delivered by the load commands.
type (
	yearsMsg  []int
	makesMsg  []carquery.Make
	modelsMsg []carquery.Model
	trimsMsg  []carquery.Trim
	errMsg    struct{ err error }
)

// browseModel walks year → make → model → trims.
type browseModel struct {
	ctx       context.Context
	src       browseSource
	soldInUSA bool

	stage  browseStage
	years  []int
	makes  []carquery.Make
	models []carquery.Model
	trims  []carquery.Trim

	year   int
	makeID string
	model  string

	cursor  int
	offset  int
	height  int
	loading bool
	err     error
}

func newBrowseModel(ctx context.Context, src browseSource, soldInUSA bool) browseModel {
	return browseModel{ctx: ctx, src: src, soldInUSA: soldInUSA, height: 15, loading: true}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadYears
}

func (m browseModel) loadYears() tea.Msg {
	yr, err := m.src.GetYearRange(m.ctx)
	if err != nil {
		return errMsg{err}
	}
	var years []int
	for y := yr.MaxYear; y >= yr.MinYear && y > 0; y-- {
		years = append(years, y)
	}
	return yearsMsg(years)
}

func (m browseModel) loadMakes(year int) tea.Cmd {
	return func() tea.Msg {
		makes, err := m.src.GetMakes(m.ctx, year, m.soldInUSA)
		if err != nil {
			return errMsg{err}
		}
		return makesMsg(makes)
	}
}

func (m browseModel) loadModels(year int, makeID string) tea.Cmd {
	return func() tea.Msg {
		models, err := m.src.GetModels(m.ctx, carquery.GetModelsParams{Year: year, Make: makeID, SoldInUSA: m.soldInUSA})
		if err != nil {
			return errMsg{err}
		}
		return modelsMsg(models)
	}
}

func (m browseModel) loadTrims(year int, makeID, model string) tea.Cmd {
	return func() tea.Msg {
		trims, err := m.src.GetTrims(m.ctx, carquery.GetTrimsParams{
			Year: year, Make: makeID, Model: model, SoldInUSA: m.soldInUSA,
		})
		if err != nil {
			return errMsg{err}
		}
		return trimsMsg(trims)
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yearsMsg:
		m.years = msg
		m.enter(stageYears)
	case makesMsg:
		m.makes = msg
		m.enter(stageMakes)
	case modelsMsg:
		m.models = msg
		m.enter(stageModels)
	case trimsMsg:
		m.trims = msg
		m.enter(stageTrims)
	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) enter(stage browseStage) {
	m.stage = stage
	m.cursor, m.offset = 0, 0
	m.loading = false
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace", "left", "h":
		if m.stage > stageYears && !m.loading {
			m.enter(m.stage - 1)
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < m.count()-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter", "right", "l":
		if m.loading || m.count() == 0 {
			return m, nil
		}
		switch m.stage {
		case stageYears:
			m.year = m.years[m.cursor]
			m.loading = true
			return m, m.loadMakes(m.year)
		case stageMakes:
			m.makeID = m.makes[m.cursor].ID
			m.loading = true
			return m, m.loadModels(m.year, m.makeID)
		case stageModels:
			m.model = m.models[m.cursor].Name
			m.loading = true
			return m, m.loadTrims(m.year, m.makeID, m.model)
		}
	}
	return m, nil
}

// count returns the number of entries in the current stage.
func (m browseModel) count() int {
	switch m.stage {
	case stageYears:
		return len(m.years)
	case stageMakes:
		return len(m.makes)
	case stageModels:
		return len(m.models)
	default:
		return len(m.trims)
	}
}

func (m browseModel) labels() []string {
	var out []string
	switch m.stage {
	case stageYears:
		for _, y := range m.years {
			out = append(out, strconv.Itoa(y))
		}
	case stageMakes:
		for _, mk := range m.makes {
			out = append(out, fmt.Sprintf("%-24s %s", mk.Display, listDimStyle.Render(mk.Country)))
		}
	case stageModels:
		for _, md := range m.models {
			out = append(out, md.Name)
		}
	}
	return out
}

func (m browseModel) breadcrumb() string {
	parts := []string{"Years"}
	if m.stage >= stageMakes {
		parts = append(parts, strconv.Itoa(m.year))
	}
	if m.stage >= stageModels {
		parts = append(parts, m.makeID)
	}
	if m.stage >= stageTrims {
		parts = append(parts, m.model)
	}
	return strings.Join(parts, " › ")
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc back  q quit"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(listDimStyle.Render("  Loading..."))
		b.WriteString("\n")
		return b.String()
	}
	if m.count() == 0 {
		b.WriteString(listDimStyle.Render("  No results"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, m.count())
	if m.stage == stageTrims {
		b.WriteString(m.trimsTable(m.offset, end))
	} else {
		labels := m.labels()
		for i := m.offset; i < end; i++ {
			if i == m.cursor {
				b.WriteString(listSelectedStyle.Render("▸ " + labels[i]))
			} else {
				b.WriteString(listNormalStyle.Render("  " + labels[i]))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, m.count())))
	return b.String()
}

func (m browseModel) trimsTable(start, end int) string {
	rows := make([][]string, 0, end-start)
	for _, t := range m.trims[start:end] {
		rows = append(rows, trimRow(t))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(trimHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if start+row == m.cursor {
				return styleTableCell.Foreground(colorCyan).Bold(true)
			}
			return styleTableCell
		})
	return t.Render() + "\n"
}

// browseCommand creates the interactive browser.
func (c *CLI) browseCommand() *cobra.Command {
	var soldInUSA bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse years, makes, models and trims interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			p := tea.NewProgram(newBrowseModel(ctx, client, soldInUSA), tea.WithContext(ctx), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(browseModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&soldInUSA, "us", false, "only vehicles sold in the USA")
	return cmd
}
