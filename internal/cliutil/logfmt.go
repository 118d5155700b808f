package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Sources attributed to log records.
const (
	SourceSystem = "system"
	SourceStdout = "stdout"
	SourceStderr = "stderr"
)

// Event describes a process lifecycle or output occurrence emitted by the CLI.
type Event struct {
	Timestamp time.Time
	Process   string
	Pid       uint32
	Level     string
	Message   string
	Source    string
}

// LogRecord represents a structured log event ready for JSON encoding.
type LogRecord struct {
	Timestamp time.Time `json:"ts"`
	Process   string    `json:"process,omitempty"`
	Pid       uint32    `json:"pid,omitempty"`
	Level     string    `json:"level"`
	Message   string    `json:"msg"`
	Source    string    `json:"source"`
}

// NewLogRecord converts an event into a structured log record. Captured
// stderr output defaults to warn; otherwise the level is inferred from the
// message, falling back to info.
func NewLogRecord(event Event) LogRecord {
	level := event.Level
	if level == "" {
		if event.Source == SourceStderr {
			level = "warn"
		} else if inferred := inferLogLevel(event.Message); inferred != "" {
			level = inferred
		} else {
			level = "info"
		}
	}
	source := event.Source
	if source == "" {
		source = SourceSystem
	}
	return LogRecord{
		Timestamp: event.Timestamp,
		Process:   event.Process,
		Pid:       event.Pid,
		Level:     level,
		Message:   event.Message,
		Source:    source,
	}
}

var levelTokenPattern = regexp.MustCompile(`(?i)\b(error|warn|info)\b`)

func inferLogLevel(message string) string {
	matches := levelTokenPattern.FindStringSubmatch(message)
	if len(matches) < 2 {
		return ""
	}
	switch strings.ToLower(matches[1]) {
	case "error":
		return "error"
	case "warn":
		return "warn"
	case "info":
		return "info"
	default:
		return ""
	}
}

// EncodeLogEvent encodes a log event to JSON, reporting errors to stderr if needed.
func EncodeLogEvent(enc *json.Encoder, stderr io.Writer, event Event) {
	if enc == nil {
		return
	}
	record := NewLogRecord(event)
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if err := enc.Encode(&record); err != nil {
		fmt.Fprintf(stderr, "error: encode log: %v\n", err)
	}
}
