package handlers

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/mocks"
	"github.com/ersonp/lore-story/internal/domain/services"
	"github.com/ersonp/lore-story/internal/infrastructure/console"
)

func TestPlayHandler_Handle_ReachesEnd(t *testing.T) {
	handler := NewPlayHandler(nil, nil)
	con := mocks.NewConsole("0", "1", "0", "0")

	result, err := handler.Handle(context.Background(), PlayOptions{File: "testdata/history.csv"}, con)

	require.NoError(t, err)
	assert.Equal(t, entities.EndFinished, result.Outcome.Reason)
	assert.Equal(t, entities.PlayState{Tag: "SALIDA", Life: 50}, result.Outcome.State)
	assert.Equal(t, []string{"LUZ", "DERECHA", "LUZ", "DERECHA"}, result.Outcome.Path)
	assert.Nil(t, result.Dump)
}

func TestPlayHandler_Handle_ConsoleTranscript(t *testing.T) {
	var out bytes.Buffer
	con := console.New(strings.NewReader("1\nfoo\n"), &out)

	result, err := NewPlayHandler(nil, nil).Handle(context.Background(), PlayOptions{File: "testdata/history.csv"}, con)

	require.NoError(t, err)
	assert.True(t, result.Outcome.Dead())
	assert.Equal(t, -50, result.Outcome.State.Life)

	expected := strings.Join([]string{
		"Life: 100",
		"You wake up in a dark room. A door opens to the right and another to the left.",
		"[0],Take the door on the right",
		"[1],Take the door on the left",
		"",
		"Life: 100",
		"A room full of spikes.",
		"[0],Go back",
		"invalid command",
		"",
		"YOU DEAD",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestPlayHandler_Handle_LongInputLineIsInvalid(t *testing.T) {
	var out bytes.Buffer
	con := console.New(strings.NewReader(strings.Repeat("x", 70000)+"\n0\n"), &out)

	result, err := NewPlayHandler(nil, nil).Handle(context.Background(), PlayOptions{File: "testdata/history.csv"}, con)

	require.NoError(t, err)
	assert.Equal(t, entities.EndInputClosed, result.Outcome.Reason)
	assert.Equal(t, []string{"LUZ", "LUZ", "DERECHA"}, result.Outcome.Path)
	assert.Equal(t, entities.PlayState{Tag: "DERECHA", Life: 70}, result.Outcome.State)
	// the long line and the end of input
	assert.Equal(t, 2, strings.Count(out.String(), "invalid command\n"))
}

func TestPlayHandler_Handle_Dump(t *testing.T) {
	opts := PlayOptions{File: "testdata/history.csv", DumpTag: "DERECHA"}

	result, err := NewPlayHandler(nil, nil).Handle(context.Background(), opts, mocks.NewConsole())

	require.NoError(t, err)
	assert.Equal(t, entities.EndInputClosed, result.Outcome.Reason)
	require.NotNil(t, result.Dump)
	assert.Equal(t, "DERECHA", result.Dump.Tag())
	assert.Len(t, result.Dump.Options, 2)
}

func TestPlayHandler_Handle_EngineOptions(t *testing.T) {
	opts := PlayOptions{
		File:   "testdata/history.csv",
		Engine: services.EngineOptions{StartTag: "DERECHA", StartLife: services.StartLife(10)},
	}

	result, err := NewPlayHandler(nil, nil).Handle(context.Background(), opts, mocks.NewConsole("0"))

	require.NoError(t, err)
	assert.True(t, result.Outcome.Dead())
	assert.Equal(t, entities.PlayState{Tag: "SALIDA", Life: -20}, result.Outcome.State)
}

func TestPlayHandler_Handle_LoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		opts   PlayOptions
		errMsg string
	}{
		{name: "missing file", opts: PlayOptions{File: "testdata/nope.csv"}, errMsg: "opening file"},
		{name: "short row", opts: PlayOptions{File: "testdata/short_row.csv"}, errMsg: "line 2: too few fields"},
		{name: "unknown format", opts: PlayOptions{File: "testdata/history.csv", Source: SourceOptions{Format: "xml"}}, errMsg: "unsupported format"},
		{name: "no file", opts: PlayOptions{}, errMsg: "no story file given"},
		{name: "library unavailable", opts: PlayOptions{Story: "cave"}, errMsg: "library is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := mocks.NewConsole("0")
			_, err := NewPlayHandler(nil, nil).Handle(context.Background(), tt.opts, con)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, con.Events)
		})
	}
}

func TestPlayHandler_Handle_FromLibrary(t *testing.T) {
	ctx := context.Background()
	library := services.NewLibraryService(mocks.NewStoryStore())
	_, err := NewLibraryHandler(library, nil).Import(ctx, "testdata/history.yaml", ImportOptions{Name: "short"})
	require.NoError(t, err)

	result, err := NewPlayHandler(library, nil).Handle(ctx, PlayOptions{Story: "short"}, mocks.NewConsole("0"))

	require.NoError(t, err)
	assert.Equal(t, entities.EndFinished, result.Outcome.Reason)
	assert.Equal(t, entities.PlayState{Tag: "SALIDA", Life: 90}, result.Outcome.State)
}
