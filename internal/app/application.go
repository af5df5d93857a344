package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Rorical/GitLingo/internal/clipboard"
	"github.com/Rorical/GitLingo/internal/config"
	"github.com/Rorical/GitLingo/internal/core"
	"github.com/Rorical/GitLingo/internal/dispatcher"
	"github.com/Rorical/GitLingo/internal/eventbus"
	"github.com/Rorical/GitLingo/internal/models"
	"github.com/Rorical/GitLingo/internal/translator"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.TranslationService
	model      *AppModel
	logger     zerolog.Logger
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config, logger zerolog.Logger) *Application {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		logger.Warn().Str("operation", err.Operation).Err(err.Err).Msg("Event bus error")
	})

	disp := dispatcher.NewEventDispatcher(eb)

	client := translator.NewClient(cfg.GetEndpoint(), translator.WithTimeout(cfg.GetTimeout()))
	service := core.NewTranslationService(
		client,
		clipboard.NewSystem(),
		eb,
		logger.With().Str("component", "core").Logger(),
	)

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      NewAppModel(disp),
		logger:     logger,
	}
}

func NewAppModel(disp *dispatcher.EventDispatcher) *AppModel {
	return &AppModel{
		appModel:   models.NewAppModel(),
		dispatcher: disp,
	}
}

func (app *Application) Start() error {
	app.logger.Info().
		Str("profile", app.config.ActiveProfile).
		Str("endpoint", app.config.GetEndpoint()).
		Msg("Starting GitLingo")

	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}
