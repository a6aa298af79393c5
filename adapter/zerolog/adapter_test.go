package zerologadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/pulselog"
)

func TestZerologSink_JSON_EmitsTSAndTag(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf)) // JSON by default

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	s.Write(pulselog.LevelError, "svc", "ERROR: boom", at)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}

	// "level" and "message" are zerolog defaults
	if m["level"] != "error" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "ERROR: boom" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["ts"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
	if m["tag"] != "svc" {
		t.Fatalf("tag mismatch: %v", m["tag"])
	}
}

func TestZerologSink_EmergencyDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf))

	s.Write(pulselog.LevelEmergency, "svc", "EMERGENCY: down", time.Now())

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if m["level"] != "panic" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
}

func TestZerologSink_SetThresholdFilters(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf))

	s.SetThreshold(pulselog.LevelWarning)
	s.Write(pulselog.LevelInfo, "svc", "INFORMATIONAL: hidden", time.Now())
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}

	s.SetThreshold(pulselog.LevelDebug)
	s.Write(pulselog.LevelDebug, "svc", "DEBUG: shown", time.Now())
	if buf.Len() == 0 {
		t.Fatal("expected debug line after threshold change")
	}
}

func TestZerologSink_ConcurrentSetThreshold(t *testing.T) {
	s := New(zerolog.New(io.Discard))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetThreshold(pulselog.Levels()[i%len(pulselog.Levels())])
			s.Write(pulselog.LevelError, "svc", "ERROR: x", time.Now())
		}(i)
	}
	wg.Wait()

	s.SetThreshold(pulselog.LevelNotice)
	if got := s.l.Load().GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("backend level: %s", got)
	}
}

func TestUse_TogglesWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := Use(Config{Writer: &buf, Identifier: "svc", Level: "info"})
	if err != nil {
		t.Fatalf("use: %v", err)
	}

	_ = l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug leaked: %s", buf.String())
	}

	pulselog.NewToggler(l).OnTrigger()
	buf.Reset()
	_ = l.Debug("shown")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["message"] != "DEBUG: shown" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
}
