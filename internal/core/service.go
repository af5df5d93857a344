package core

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Rorical/GitLingo/internal/clipboard"
	"github.com/Rorical/GitLingo/internal/eventbus"
	"github.com/Rorical/GitLingo/internal/models"
	"github.com/Rorical/GitLingo/internal/translator"
)

// CopiedMessage acknowledges a successful clipboard write
const CopiedMessage = "Command copied to clipboard!"

// Translator turns a query into a suggested command
type Translator interface {
	Translate(ctx context.Context, query string) (models.TranslationResult, error)
}

type TranslationService struct {
	translator Translator
	clipboard  clipboard.Writer
	state      *TranslationState
	eventBus   *eventbus.EventBus // nil when running without a UI
	logger     zerolog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewTranslationService wires the form state to its collaborators. eb may be
// nil for one-shot use, in which case no state is pushed anywhere.
func NewTranslationService(t Translator, clip clipboard.Writer, eb *eventbus.EventBus, logger zerolog.Logger) *TranslationService {
	ctx, cancel := context.WithCancel(context.Background())

	return &TranslationService{
		translator: t,
		clipboard:  clip,
		state:      NewTranslationState(),
		eventBus:   eb,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start runs the core logic in a goroutine
func (cs *TranslationService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI()
	go cs.eventLoop()
}

// Stop aborts any outstanding request and waits for it to settle
func (cs *TranslationService) Stop() {
	cs.cancel()
	cs.wg.Wait()
}

func (cs *TranslationService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *TranslationService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitQueryEvent:
		// Run the request off the loop so copy events are not held up
		cs.wg.Add(1)
		go func() {
			defer cs.wg.Done()
			cs.Submit(e.Query)
		}()
	case eventbus.CopyCommandEvent:
		_, _ = cs.CopyCommand()
	}
}

// Submit translates query and blocks until the request settles. It returns
// false without touching state or the network when query is blank or a
// request is already in flight.
func (cs *TranslationService) Submit(query string) bool {
	trimmed, ok := cs.state.BeginRequest(query)
	if !ok {
		cs.logger.Debug().Str("query", query).Msg("Submit ignored")
		return false
	}
	cs.pushStateToUI()

	cs.logger.Debug().Str("query", trimmed).Msg("Sending translation request")

	result, err := cs.translator.Translate(cs.ctx, trimmed)
	if err != nil {
		var serverErr *translator.ServerError
		if errors.As(err, &serverErr) {
			cs.logger.Debug().Int("status", serverErr.StatusCode).Msg("Translation service returned an error status")
		} else {
			cs.logger.Debug().Err(err).Msg("Translation request failed")
		}
		cs.state.FinishWithError(err)
		cs.pushStateToUI()
		return true
	}

	cs.logger.Debug().Str("command", result.Command).Msg("Translation received")
	cs.state.FinishWithResult(result)
	cs.pushStateToUI()
	return true
}

// CopyCommand writes the current command to the clipboard. Without a result
// carrying a command it does nothing. A failed write is only logged.
func (cs *TranslationService) CopyCommand() (bool, error) {
	result := cs.state.GetResult()
	if !result.HasCommand() {
		return false, nil
	}

	if err := cs.clipboard.Write(result.Command); err != nil {
		cs.logger.Error().Err(err).Msg("Failed to copy")
		return false, err
	}

	cs.pushToUI(eventbus.NoticeEvent{Message: CopiedMessage})
	return true, nil
}

// Snapshot returns the current form state
func (cs *TranslationService) Snapshot() Snapshot {
	return cs.state.Snapshot()
}

func (cs *TranslationService) pushStateToUI() {
	snap := cs.state.Snapshot()
	cs.pushToUI(eventbus.StateUpdateEvent{
		Result:    snap.Result,
		IsLoading: snap.IsLoading,
		Error:     snap.Error,
	})
}

func (cs *TranslationService) pushToUI(event eventbus.CoreEvent) {
	if cs.eventBus == nil {
		return
	}
	if err := cs.eventBus.SendToUI(event); err != nil {
		// If we can't send to UI, log the error and continue
		cs.logger.Warn().Err(err).Msg("Error sending state to UI")
	}
}
