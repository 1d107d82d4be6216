package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Balasairam26/farm-waste-fertilizer/cmd/tui/internal/view"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog/csvstore"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog/pgstore"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/config"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/database"
)

type model struct {
	catalogService *catalog.Service
	advisorService *advisor.Service

	currentView View

	recommendView view.RecommendModel
	browseView    view.BrowseModel
	addView       view.AddModel
}

type View int

const (
	ViewMenu      View = 0
	ViewRecommend View = 1
	ViewBrowse    View = 2
	ViewAdd       View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		slog.Error("failed to set up catalog storage", "error", err)
		os.Exit(1)
	}

	catSvc := catalog.NewService(repo)
	if err := catSvc.Load(context.Background()); err != nil {
		slog.Error("failed to load waste catalog", "error", err)
		os.Exit(1)
	}

	advSvc := advisor.NewService(catSvc, cfg.Matching.ScoreCutoff)

	return model{
		catalogService: catSvc,
		advisorService: advSvc,
		currentView:    ViewMenu,
		recommendView:  view.NewRecommendModel(advSvc, catSvc),
		browseView:     view.NewBrowseModel(catSvc),
		addView:        view.NewAddModel(catSvc),
	}
}

func newRepository(cfg *config.Config) (catalog.Repository, error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return pgstore.New(db), nil

	case config.SourceCSV:
		return csvstore.New(cfg.Dataset.Path), nil

	default:
		return nil, fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewRecommend
				m.recommendView = view.NewRecommendModel(m.advisorService, m.catalogService)

				return m, m.recommendView.Init()
			case "2":
				m.currentView = ViewBrowse
				m.browseView = view.NewBrowseModel(m.catalogService)

				return m, m.browseView.Init()
			case "3":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.catalogService)

				return m, m.addView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRecommend:
		var newModel tea.Model
		newModel, cmd = m.recommendView.Update(msg)
		m.recommendView = newModel.(view.RecommendModel)
	case ViewBrowse:
		var newModel tea.Model
		newModel, cmd = m.browseView.Update(msg)
		m.browseView = newModel.(view.BrowseModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Farm Waste Advisor\n\n" +
				"1. Get Fertilizer Advice\n" +
				"2. Browse Waste Types\n" +
				"3. Add Waste Type\n\n" +
				"q. Quit",
		)
	case ViewRecommend:
		return m.recommendView.View()
	case ViewBrowse:
		return m.browseView.View()
	case ViewAdd:
		return m.addView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
