package treelog

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig bounds a log file. Zero values mean lumberjack defaults:
// 100 MB per file, no backup or age limit, no compression.
type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewRotatingFileHandler returns a StreamHandler writing formatted lines
// to a size-rotated file at path. Colors are off; escape sequences do not
// belong in files.
func NewRotatingFileHandler(path string, cfg RotationConfig) *StreamHandler {
	h := NewStreamHandler(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	h.UseColors = false
	return h
}
