package treelog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

// flushBuffer counts Flush calls on top of an in-memory stream.
type flushBuffer struct {
	bytes.Buffer
	flushes   int
	flushFail error
}

func (b *flushBuffer) Flush() error {
	if b.flushFail != nil {
		return b.flushFail
	}
	b.flushes++
	return nil
}

// errWriter fails every write.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestStreamHandlerFormats(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	ev, err := root.NewEvent(LevelWarning, "watch out")
	require.NoError(t, err)

	var buf bytes.Buffer
	h := NewStreamHandler(&buf)
	h.UseColors = false

	require.NoError(t, h.Handle(root, ev))
	assert.Equal(t, root.formatMessage(ev, false), buf.String())
	assert.Contains(t, buf.String(), "WARNING")
	assert.Contains(t, buf.String(), "watch out")
}

func TestStreamHandlerRawMessage(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	ev, err := root.NewEvent(LevelWarning, "watch out")
	require.NoError(t, err)

	var buf bytes.Buffer
	h := NewStreamHandler(&buf)
	h.ApplyFormat = false

	require.NoError(t, h.Handle(root, ev))
	assert.Equal(t, "watch out", buf.String(), "unformatted output is the bare message")
}

func TestStreamHandlerFlushes(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	ev, err := root.NewEvent(LevelError, "x")
	require.NoError(t, err)

	stream := &flushBuffer{}
	h := NewStreamHandler(stream)
	require.NoError(t, h.Handle(root, ev))
	assert.Equal(t, 1, stream.flushes)

	h.Flush = false
	require.NoError(t, h.Handle(root, ev))
	assert.Equal(t, 1, stream.flushes, "flushing can be switched off")
}

func TestStreamHandlerFlushError(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	ev, err := root.NewEvent(LevelError, "x")
	require.NoError(t, err)

	boom := errors.New("pipe closed")
	h := NewStreamHandler(&flushBuffer{flushFail: boom})

	err = h.Handle(root, ev)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "flush")
}

func TestStreamHandlerWriteError(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	boom := errors.New("disk full")
	root.SetHandlers(NewStreamHandler(errWriter{err: boom}))

	ev, err := root.Critical("will not land")
	require.NotNil(t, ev)

	var herr *HandlerError
	require.ErrorAs(t, err, &herr)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, herr.Err.Error(), "write")
}

func TestNoopHandler(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t)
	ev, err := root.NewEvent(LevelCritical, "into the void")
	require.NoError(t, err)
	assert.NoError(t, NoopHandler{}.Handle(root, ev))
}

func TestRotatingFileHandlerConfig(t *testing.T) {
	t.Parallel()

	h := NewRotatingFileHandler("/var/log/app/treelog.log", RotationConfig{
		MaxSizeMB:  5,
		MaxBackups: 2,
		MaxAgeDays: 7,
		Compress:   true,
	})

	lj, ok := h.Stream.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, "/var/log/app/treelog.log", lj.Filename)
	assert.Equal(t, 5, lj.MaxSize)
	assert.Equal(t, 2, lj.MaxBackups)
	assert.Equal(t, 7, lj.MaxAge)
	assert.True(t, lj.Compress)

	assert.True(t, h.ApplyFormat)
	assert.True(t, h.Flush)
	assert.False(t, h.UseColors, "escape sequences stay out of files")
}
