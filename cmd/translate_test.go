package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/GitLingo/internal/core"
	"github.com/Rorical/GitLingo/internal/models"
	"github.com/Rorical/GitLingo/internal/translator"
)

type stubTranslator struct {
	result models.TranslationResult
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, query string) (models.TranslationResult, error) {
	s.calls++
	return s.result, s.err
}

type stubClipboard struct {
	written string
}

func (s *stubClipboard) Write(text string) error {
	s.written = text
	return nil
}

func TestRunTranslate_Text(t *testing.T) {
	tr := &stubTranslator{result: models.TranslationResult{Command: "git stash", Description: "Saves changes temporarily"}}
	clip := &stubClipboard{}
	svc := core.NewTranslationService(tr, clip, nil, zerolog.Nop())

	var out bytes.Buffer
	err := runTranslate(&out, svc, "save my work", true, false)

	require.NoError(t, err)
	assert.Equal(t, "Suggested Command: git stash\nSaves changes temporarily\nCommand copied to clipboard!\n", out.String())
	assert.Equal(t, "git stash", clip.written)
}

func TestRunTranslate_JSON(t *testing.T) {
	tr := &stubTranslator{result: models.TranslationResult{Command: "git log", Description: "Shows history"}}
	svc := core.NewTranslationService(tr, &stubClipboard{}, nil, zerolog.Nop())

	var out bytes.Buffer
	require.NoError(t, runTranslate(&out, svc, "show history", false, true))

	var got models.TranslationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, tr.result, got)
}

func TestRunTranslate_BlankQuery(t *testing.T) {
	tr := &stubTranslator{}
	svc := core.NewTranslationService(tr, &stubClipboard{}, nil, zerolog.Nop())

	err := runTranslate(&bytes.Buffer{}, svc, "   ", false, false)

	assert.ErrorIs(t, err, errEmptyQuery)
	assert.Zero(t, tr.calls)
}

func TestRunTranslate_ServerError(t *testing.T) {
	tr := &stubTranslator{err: &translator.ServerError{StatusCode: 500}}
	svc := core.NewTranslationService(tr, &stubClipboard{}, nil, zerolog.Nop())

	var out bytes.Buffer
	err := runTranslate(&out, svc, "undo", false, false)

	var serverErr *translator.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.EqualError(t, err, "Something went wrong with the server.")
	assert.Empty(t, out.String())
}
