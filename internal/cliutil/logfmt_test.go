package cliutil

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestInferLogLevel(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"ERROR: something broke", "error"},
		{"warn: disk is nearly full", "warn"},
		{"info: started", "info"},
		{"plain output line", ""},
		{"errors are not a level token", ""},
	}

	for _, tc := range cases {
		if got := inferLogLevel(tc.message); got != tc.want {
			t.Fatalf("inferLogLevel(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestNewLogRecordDefaults(t *testing.T) {
	record := NewLogRecord(Event{Process: "web", Pid: 42, Message: "spawned"})
	if record.Level != "info" {
		t.Fatalf("expected info level, got %q", record.Level)
	}
	if record.Source != SourceSystem {
		t.Fatalf("expected system source, got %q", record.Source)
	}
	if record.Process != "web" || record.Pid != 42 {
		t.Fatalf("unexpected identity fields: %+v", record)
	}
}

func TestNewLogRecordStderrDefaultsToWarn(t *testing.T) {
	record := NewLogRecord(Event{Message: "something happened", Source: SourceStderr})
	if record.Level != "warn" {
		t.Fatalf("expected warn level for stderr output, got %q", record.Level)
	}
}

func TestEncodeLogEventPopulatesTimestamp(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	before := time.Now()
	EncodeLogEvent(enc, &bytes.Buffer{}, Event{Process: "task", Message: "done"})

	var record LogRecord
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Timestamp.Before(before) {
		t.Fatalf("expected timestamp to be populated, got %v", record.Timestamp)
	}
	if record.Message != "done" {
		t.Fatalf("unexpected message: %q", record.Message)
	}
}

func TestEncodeLogEventNilEncoder(t *testing.T) {
	EncodeLogEvent(nil, &bytes.Buffer{}, Event{Message: "ignored"})
}
