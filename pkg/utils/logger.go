package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// JSONLogsEnv switches the logger to one JSON object per line when set to "1".
const JSONLogsEnv = "TERMLINE_JSON_LOGS"

// Logger writes diagnostics to a rotating log file. It never writes to
// stdout, which belongs to the terminal being driven. A nil *Logger is
// valid and discards everything.
type Logger struct {
	logger   *log.Logger
	closer   io.Closer
	jsonMode bool
}

// LoggerConfig controls where and how a Logger writes.
type LoggerConfig struct {
	// Filename is the log file path. Empty discards all output.
	Filename string
	// JSON emits structured records instead of plain lines.
	JSON bool
}

// NewLogger creates a logger backed by a lumberjack rotating file.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Filename == "" {
		return &Logger{logger: log.New(io.Discard, "", 0), jsonMode: cfg.JSON}
	}
	logFile := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28,   // days
		Compress:   true, // disabled by default
	}
	return &Logger{
		logger:   log.New(logFile, "", log.LstdFlags),
		closer:   logFile,
		jsonMode: cfg.JSON,
	}
}

// LoggerConfigFromEnv fills in the JSON flag from TERMLINE_JSON_LOGS.
func LoggerConfigFromEnv(filename string) LoggerConfig {
	return LoggerConfig{Filename: filename, JSON: os.Getenv(JSONLogsEnv) == "1"}
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w == nil {
		return
	}
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w == nil {
		return
	}
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	if w == nil || err == nil {
		return
	}
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error()})
		return
	}
	w.logger.Printf("Error: %s", err)
}
