package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "export-view",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"view": "task-phase"},
	})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "service_use_case", got["message"])
	assert.Equal(t, "export-view", got["use_case"])
	assert.Equal(t, float64(1500), got["duration_ms"])
	assert.Equal(t, "task-phase", got["view"])
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-filter", Err: errors.New("boom")})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "boom", got["error"])
	assert.Equal(t, false, got["success"])
}

func TestLogUseCaseObserver_DisabledIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(zerolog.Nop()))
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, combineObservers([]UseCaseObserver{nil, rec}))

	first, second := &recordingObserver{}, &recordingObserver{}
	combineObservers([]UseCaseObserver{first, nil, second}).
		ObserveUseCase(context.Background(), UseCaseEvent{Name: "list-filters"})
	assert.Equal(t, []string{"list-filters"}, first.names())
	assert.Equal(t, []string{"list-filters"}, second.names())
}
