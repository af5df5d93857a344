package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/GitLingo/internal/eventbus"
	"github.com/Rorical/GitLingo/internal/models"
)

const (
	StatusReady       = "Ready"
	StatusTranslating = "Translating"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	// A pending acknowledgment swallows the next key
	if appModel.Notice != "" {
		if keyMsg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		appModel.Notice = ""
		return nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyEnter:
		return submitQuery(appModel, eb)
	case tea.KeyCtrlY:
		return copyCommand(appModel, eb)
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	return cmd
}

func submitQuery(appModel *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	// Submit is disabled while a request is outstanding
	if appModel.Loading {
		return nil
	}

	query := appModel.Input.Value()
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if err := eb.SendToCore(eventbus.SubmitQueryEvent{Query: query}); err != nil {
		appModel.Status = "Error sending query: " + err.Error()
		return nil
	}

	// Disable submit right away; core confirms with its own state push
	appModel.Loading = true
	appModel.Status = StatusTranslating
	return appModel.Spinner.Tick
}

func copyCommand(appModel *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	if !appModel.Result.HasCommand() {
		return nil
	}

	if err := eb.SendToCore(eventbus.CopyCommandEvent{}); err != nil {
		appModel.Status = "Error sending copy request: " + err.Error()
	}
	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		wasLoading := appModel.Loading

		appModel.Result = event.Result
		appModel.Loading = event.IsLoading
		appModel.Error = ""
		if event.Error != nil {
			appModel.Error = event.Error.Error()
		}

		if event.IsLoading {
			appModel.Status = StatusTranslating
		} else {
			appModel.Status = StatusReady
		}

		if event.IsLoading && !wasLoading {
			return appModel.Spinner.Tick
		}
	case eventbus.NoticeEvent:
		appModel.Notice = event.Message
	}

	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if sizeMsg.Width > 20 {
		appModel.Input.Width = sizeMsg.Width - 20
	}
}

// HandleSpinnerTick animates the spinner only while loading
func HandleSpinnerTick(appModel *models.AppModel, tick spinner.TickMsg) tea.Cmd {
	if !appModel.Loading {
		return nil
	}
	var cmd tea.Cmd
	appModel.Spinner, cmd = appModel.Spinner.Update(tick)
	return cmd
}
