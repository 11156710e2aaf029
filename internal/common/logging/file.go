package logging

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "dualwatch.log"

// NewFileWriter returns a rotating log writer under dir, keeping about a
// month of compressed history.
func NewFileWriter(dir string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    50, // MB
		MaxAge:     30, // days
		MaxBackups: 30,
		Compress:   true,
	}
}
