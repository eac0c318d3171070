package treelog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventCaptures(t *testing.T) {
	t.Parallel()

	root, rec := newTestRoot(t)
	root.SetIndent(2)

	ev, err := root.NewEvent(LevelInfo, "hello")
	require.NoError(t, err)
	require.NotNil(t, ev)

	assert.Equal(t, "hello", ev.Message)
	assert.Equal(t, LevelInfo, ev.Level)
	assert.True(t, ev.Time.Equal(frozenTime))
	assert.Equal(t, 2, ev.Indent)
	assert.Equal(t, 1, ev.FrameDepth)
	assert.Positive(t, ev.Line)
	assert.False(t, ev.Traceback)
	assert.NoError(t, ev.Err)
	assert.Empty(t, ev.Stack)
	assert.Equal(t, 0, rec.count(), "NewEvent never dispatches")
}

func TestNewEventStringifiesMessage(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)

	cases := []struct {
		message any
		want    string
	}{
		{"plain", "plain"},
		{42, "42"},
		{3.5, "3.5"},
		{stringerLevel("stringed"), "stringed"},
		{errors.New("went wrong"), "went wrong"},
		{true, "true"},
	}
	for _, tc := range cases {
		ev, err := root.NewEvent(LevelInfo, tc.message)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ev.Message)
	}
}

func TestNewEventPermissiveLevel(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)

	ev, err := root.NewEvent("warn", "alias")
	require.NoError(t, err)
	assert.Equal(t, LevelWarning, ev.Level)

	ev, err = root.NewEvent(42, "raw integers are allowed here")
	require.NoError(t, err)
	assert.Equal(t, Level(42), ev.Level)
}

func TestNewEventInvalidLevel(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)

	ev, err := root.NewEvent("bogus", "x")
	require.ErrorIs(t, err, ErrInvalidLevel)
	assert.Nil(t, ev)
}

func TestNewEventTraceback(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	cause := errors.New("disk on fire")

	ev, err := root.NewEvent(LevelError, "x", WithTraceback(), WithError(cause))
	require.NoError(t, err)
	assert.True(t, ev.Traceback)
	assert.Same(t, cause, ev.Err)
	assert.Contains(t, string(ev.Stack), "goroutine")
}
