package core

import (
	"strings"
	"sync"

	"github.com/Rorical/GitLingo/internal/models"
)

// TranslationState holds the form state: last submitted query, last result,
// in-flight flag and last error. Fields only change through the transition
// methods so Loading, Success and Failed never overlap.
type TranslationState struct {
	mu        sync.RWMutex
	query     string
	result    *models.TranslationResult
	isLoading bool
	lastError error
}

// Snapshot is a consistent copy of TranslationState
type Snapshot struct {
	Query     string
	Result    *models.TranslationResult
	IsLoading bool
	Error     error
}

func NewTranslationState() *TranslationState {
	return &TranslationState{}
}

// BeginRequest moves to Loading, clearing result and error. It refuses
// blank queries and requests made while another is in flight, leaving the
// state untouched. The returned query is trimmed.
func (ts *TranslationState) BeginRequest(query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", false
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.isLoading {
		return "", false
	}

	ts.query = trimmed
	ts.isLoading = true
	ts.result = nil
	ts.lastError = nil
	return trimmed, true
}

func (ts *TranslationState) FinishWithResult(result models.TranslationResult) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.isLoading = false
	ts.result = &result
	ts.lastError = nil
}

func (ts *TranslationState) FinishWithError(err error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.isLoading = false
	ts.result = nil
	ts.lastError = err
}

func (ts *TranslationState) IsLoading() bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.isLoading
}

func (ts *TranslationState) GetLastError() error {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.lastError
}

// GetResult returns a copy of the last result, or nil
func (ts *TranslationState) GetResult() *models.TranslationResult {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.result == nil {
		return nil
	}
	result := *ts.result
	return &result
}

func (ts *TranslationState) Snapshot() Snapshot {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	snap := Snapshot{
		Query:     ts.query,
		IsLoading: ts.isLoading,
		Error:     ts.lastError,
	}
	if ts.result != nil {
		result := *ts.result
		snap.Result = &result
	}
	return snap
}
