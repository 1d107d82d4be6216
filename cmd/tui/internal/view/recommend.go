package view

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/report"
)

type recommendState int

const (
	recommendStateForm recommendState = iota
	recommendStateLoading
	recommendStateResult
)

var (
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	unmatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

type RecommendModel struct {
	CommonModel
	advisorService *advisor.Service
	catalogService *catalog.Service

	state recommendState
	form  *huh.Form

	result *advisor.Recommendation
	status string
	err    error

	// Form field bindings
	formSelected string
	formFreeText string
	formQuantity string
}

func NewRecommendModel(advSvc *advisor.Service, catSvc *catalog.Service) RecommendModel {
	m := RecommendModel{
		advisorService: advSvc,
		catalogService: catSvc,
	}
	m.form = m.newForm()

	return m
}

func (m RecommendModel) Title() string { return "Get Recommendation" }

func (m RecommendModel) ShortHelp() string {
	if m.state == recommendStateResult {
		if m.result != nil && m.result.Kind == advisor.OutcomeMatched {
			return "s: save report | n: new query | Esc: back"
		}

		return "n: new query | Esc: back"
	}

	return "Esc: back | Enter: next field"
}

func (m *RecommendModel) newForm() *huh.Form {
	options := []huh.Option[string]{huh.NewOption("(none — type below)", "")}
	for _, name := range m.catalogService.Names() {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("selected").
				Title("Pick a waste type from the list").
				Options(options...).
				Value(&m.formSelected),

			huh.NewInput().
				Key("free_text").
				Title("Or type any waste name").
				Placeholder("e.g. cow manure, banana peels").
				Value(&m.formFreeText),

			huh.NewInput().
				Key("quantity").
				Title("Quantity in kg (optional, for yield estimate)").
				Placeholder("0").
				Value(&m.formQuantity).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("enter a number")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m RecommendModel) Init() tea.Cmd {
	return m.form.Init()
}

type recommendResultMsg struct {
	result *advisor.Recommendation
	err    error
}

type reportSavedMsg struct {
	path string
	err  error
}

func (m RecommendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == recommendStateResult {
			switch msg.String() {
			case "n":
				return m.reset()
			case "s":
				if m.result != nil && m.result.Kind == advisor.OutcomeMatched {
					return m, m.saveReportCmd()
				}
			}

			return m, nil
		}

	case recommendResultMsg:
		m.state = recommendStateResult
		m.result = msg.result
		m.err = msg.err

		return m, nil

	case reportSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving report: %v", msg.err)
		} else {
			m.status = "Report saved to " + msg.path
		}

		return m, nil
	}

	if m.state != recommendStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = recommendStateLoading

	return m, m.recommendCmd()
}

func (m RecommendModel) reset() (tea.Model, tea.Cmd) {
	m.state = recommendStateForm
	m.result = nil
	m.err = nil
	m.status = ""
	m.formSelected = ""
	m.formFreeText = ""
	m.formQuantity = ""
	m.form = m.newForm()

	return m, m.form.Init()
}

func (m RecommendModel) recommendCmd() tea.Cmd {
	params := advisor.RecommendParams{
		SelectedName: m.form.GetString("selected"),
		FreeText:     m.form.GetString("free_text"),
	}

	if q := strings.TrimSpace(m.form.GetString("quantity")); q != "" {
		// Validated by the form already; a parse failure means zero.
		params.QuantityKg, _ = strconv.ParseFloat(q, 64)
	}

	return func() tea.Msg {
		result, err := m.advisorService.Recommend(context.Background(), params)
		return recommendResultMsg{result: result, err: err}
	}
}

func (m RecommendModel) saveReportCmd() tea.Cmd {
	rec := m.result.Record
	est := m.result.Estimate

	return func() tea.Msg {
		path := report.Filename(rec.Name)

		text := report.Format(rec, est, time.Now())
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return reportSavedMsg{err: err}
		}

		return reportSavedMsg{path: path}
	}
}

func (m RecommendModel) View() string {
	switch m.state {
	case recommendStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case recommendStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Matching...")

	case recommendStateResult:
		return lipgloss.NewStyle().Padding(1).Render(m.resultView())
	}

	return ""
}

func (m RecommendModel) resultView() string {
	if m.err != nil {
		return unmatchedStyle.Render("Error: ") + m.err.Error()
	}

	if m.result == nil {
		return ""
	}

	var b strings.Builder

	switch m.result.Kind {
	case advisor.OutcomeMatched:
		rec := m.result.Record

		b.WriteString(matchedStyle.Render(fmt.Sprintf("Matched: %s", rec.Name)))
		b.WriteString(faintStyle.Render(fmt.Sprintf("  (score %s)", FormatScore(m.result.Score))))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Best Use: ") + orDash(rec.BestUse) + "\n")
		b.WriteString(labelStyle.Render("Compost Time: ") + orDash(rec.CompostTime) + "\n")
		b.WriteString(labelStyle.Render("Nutrient: ") + orDash(rec.Nutrient) + "\n")
		b.WriteString(labelStyle.Render("Tips: ") + orDash(rec.Tips) + "\n")

		if est := m.result.Estimate; est != nil {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("Estimated compost output from %s input: %s (yield %s)\n",
				FormatKg(est.QuantityKg), FormatKg(est.OutputKg), FormatYield(&est.YieldPct)))
			b.WriteString(faintStyle.Render(est.Note) + "\n")
		}

	case advisor.OutcomeUnmatched:
		b.WriteString(unmatchedStyle.Render("No confident match found."))
		b.WriteString(faintStyle.Render(fmt.Sprintf("  (closest score %s)", FormatScore(m.result.ClosestScore))))
		b.WriteString("\n\nTry rephrasing or pick from the list. Top suggestions:\n")

		for _, s := range m.result.Suggestions {
			b.WriteString(fmt.Sprintf("  - %s (score %s)\n", s.Name, FormatScore(s.Score)))
		}

	case advisor.OutcomeEmptyInput:
		b.WriteString("Type a waste name or pick one from the list to get a recommendation.")
	}

	if m.status != "" {
		b.WriteString("\n" + faintStyle.Render(m.status))
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
