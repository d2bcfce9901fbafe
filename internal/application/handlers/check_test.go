package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-story/internal/domain/services"
)

func TestCheckHandler_Handle(t *testing.T) {
	result, err := NewCheckHandler(nil).Handle("testdata/history.csv", SourceOptions{}, "")

	require.NoError(t, err)
	assert.Equal(t, 8, result.Records)
	assert.Equal(t, 3, result.Report.Nodes)
	assert.Equal(t, 5, result.Report.Options)
	require.Len(t, result.Report.Warnings, 1)
	assert.Equal(t, services.WarnDanglingTarget, result.Report.Warnings[0].Code)
	assert.Equal(t, 5, result.Report.Warnings[0].Line)
}

func TestCheckHandler_Handle_OtherStart(t *testing.T) {
	result, err := NewCheckHandler(nil).Handle("testdata/history.csv", SourceOptions{}, "IZQUIERDA")

	require.NoError(t, err)
	assert.False(t, result.Report.Clean())
	var unreachable int
	for _, w := range result.Report.Warnings {
		if w.Code == services.WarnUnreachable {
			unreachable++
		}
	}
	assert.Equal(t, 0, unreachable)
}

func TestCheckHandler_Handle_ParseError(t *testing.T) {
	_, err := NewCheckHandler(nil).Handle("testdata/short_row.csv", SourceOptions{}, "LUZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too few fields")
}
