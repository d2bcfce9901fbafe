package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Output(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.ShowLife(100)
	c.ShowSituation("Start")
	c.ShowOption(0, "Go right")
	c.ShowOption(1, "Go left")
	c.ShowInvalidCommand()
	c.ShowSeparator()
	c.ShowDeath()

	assert.Equal(t, "Life: 100\nStart\n[0],Go right\n[1],Go left\ninvalid command\n\nYOU DEAD\n", out.String())
}

func TestConsole_ReadLine(t *testing.T) {
	ctx := context.Background()
	c := New(strings.NewReader("0\n 2 \nlast"), io.Discard)

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, " 2 ", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_ReadLine_LineEndings(t *testing.T) {
	ctx := context.Background()
	c := New(strings.NewReader("1\r\n\n"), io.Discard)

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", line)

	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_ReadLine_LongLine(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("x", 70000)
	c := New(strings.NewReader(long+"\n0\n"), io.Discard)

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", line)
}

func TestConsole_ReadLine_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(strings.NewReader("0\n"), io.Discard).ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
