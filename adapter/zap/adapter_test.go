package zapadapter

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/pulselog"
)

func newTestZap(buf *bytes.Buffer, al zap.AtomicLevel) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "", // disable zap's own time; we inject "ts"
		LevelKey:    "level",
		MessageKey:  "message",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(buf), al)
	return zap.New(core)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("json decode: %v", err)
		}
		out = append(out, m)
	}
	return out
}

func TestZapSink_EmitsTSAndTag(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zap.NewAtomicLevelAt(zapcore.DebugLevel)))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	s.Write(pulselog.LevelWarning, "svc", "WARNING: careful", at)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	m := lines[0]
	if m["level"] != "warn" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "WARNING: careful" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["ts"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
	if m["tag"] != "svc" {
		t.Fatalf("tag mismatch: %v", m["tag"])
	}
}

func TestZapSink_SevereLevelsMapToError(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zap.NewAtomicLevelAt(zapcore.DebugLevel)))

	for _, l := range []pulselog.Level{pulselog.LevelEmergency, pulselog.LevelAlert, pulselog.LevelCritical} {
		s.Write(l, "svc", l.String()+": x", time.Now())
	}
	for _, m := range decodeLines(t, &buf) {
		if m["level"] != "error" {
			t.Fatalf("expected error level, got %v", m["level"])
		}
	}
}

func TestZapSink_SetThresholdFollowsLogger(t *testing.T) {
	var buf bytes.Buffer
	al := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	s := NewWithAtomicLevel(newTestZap(&buf, al), &al)

	l, err := pulselog.NewBuilder().WithSink(s).WithLevel("error").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if al.Level() != zapcore.ErrorLevel {
		t.Fatalf("atomic level not propagated at build: %v", al.Level())
	}

	l.SetLevel("debug")
	if al.Level() != zapcore.DebugLevel {
		t.Fatalf("atomic level not propagated on change: %v", al.Level())
	}
}

func TestUse_BuildsWorkingLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := Use(Config{Writer: &buf, Identifier: "svc", Level: "notice"})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	_ = l.Info("dropped")
	_ = l.Error("kept")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "ERROR: kept" {
		t.Fatalf("unexpected output: %v", lines)
	}
}
