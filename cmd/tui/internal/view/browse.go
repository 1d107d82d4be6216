package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

// BrowseModel shows the current waste dataset in a table.
type BrowseModel struct {
	CommonModel
	catalogService *catalog.Service

	table table.Model
}

func NewBrowseModel(catSvc *catalog.Service) BrowseModel {
	columns := []table.Column{
		{Title: "Waste Type", Width: 20},
		{Title: "Best Use", Width: 22},
		{Title: "Compost Time", Width: 14},
		{Title: "Nutrient", Width: 18},
		{Title: "Yield", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := BrowseModel{
		catalogService: catSvc,
		table:          t,
	}
	m.refreshRows()

	return m
}

func (m *BrowseModel) refreshRows() {
	records := m.catalogService.Records()

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			rec.Name,
			rec.BestUse,
			rec.CompostTime,
			rec.Nutrient,
			FormatYield(rec.YieldPct),
		})
	}

	m.table.SetRows(rows)
}

func (m BrowseModel) Title() string { return "Browse Dataset" }

func (m BrowseModel) ShortHelp() string { return "↑/↓: scroll | Esc: back" }

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BrowseModel) View() string {
	tip := faintStyle.Render("Tips column omitted for width; use the recommendation view for full advice.")

	return lipgloss.NewStyle().Padding(1).Render(m.table.View() + "\n" + tip)
}
