package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

type addState int

const (
	addStateForm addState = iota
	addStateSaving
	addStateDone
)

// AddModel collects a new waste type and appends it to the dataset.
type AddModel struct {
	CommonModel
	catalogService *catalog.Service

	state  addState
	form   *huh.Form
	status string

	// Form field bindings
	formName        string
	formBestUse     string
	formCompostTime string
	formNutrient    string
	formTips        string
	formYield       string
}

func NewAddModel(catSvc *catalog.Service) AddModel {
	m := AddModel{catalogService: catSvc}
	m.form = m.newForm()

	return m
}

func (m *AddModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Waste Type name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a waste type name")
					}
					return nil
				}),

			huh.NewInput().
				Key("best_use").
				Title("Best Use").
				Value(&m.formBestUse),

			huh.NewInput().
				Key("compost_time").
				Title("Compost Time").
				Placeholder("e.g. 4-6 weeks").
				Value(&m.formCompostTime),

			huh.NewInput().
				Key("nutrient").
				Title("Nutrient Type").
				Value(&m.formNutrient),

			huh.NewText().
				Key("tips").
				Title("Tips / Notes").
				Value(&m.formTips),

			huh.NewInput().
				Key("yield").
				Title("Estimated yield % (optional)").
				Value(&m.formYield),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m AddModel) Title() string { return "Add Waste Type" }

func (m AddModel) ShortHelp() string {
	if m.state == addStateDone {
		return "a: add another | Esc: back"
	}

	return "Esc: back | Enter: next field"
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

type addResultMsg struct {
	record *catalog.Record
	err    error
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == addStateDone && msg.String() == "a" {
			return m.reset()
		}

	case addResultMsg:
		m.state = addStateDone

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Added %q to the dataset.", msg.record.Name)
		}

		return m, nil
	}

	if m.state != addStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = addStateSaving

	return m, m.addCmd()
}

func (m AddModel) reset() (tea.Model, tea.Cmd) {
	m.state = addStateForm
	m.status = ""
	m.formName = ""
	m.formBestUse = ""
	m.formCompostTime = ""
	m.formNutrient = ""
	m.formTips = ""
	m.formYield = ""
	m.form = m.newForm()

	return m, m.form.Init()
}

func (m AddModel) addCmd() tea.Cmd {
	params := catalog.AddParams{
		Name:        m.form.GetString("name"),
		BestUse:     m.form.GetString("best_use"),
		CompostTime: m.form.GetString("compost_time"),
		Nutrient:    m.form.GetString("nutrient"),
		Tips:        m.form.GetString("tips"),
	}

	// An unparseable yield is dropped rather than rejected.
	if s := strings.TrimSpace(m.form.GetString("yield")); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			params.YieldPct = &v
		}
	}

	return func() tea.Msg {
		rec, err := m.catalogService.Add(context.Background(), params)
		return addResultMsg{record: rec, err: err}
	}
}

func (m AddModel) View() string {
	switch m.state {
	case addStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case addStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")

	case addStateDone:
		return lipgloss.NewStyle().Padding(1).Render(m.status)
	}

	return ""
}
