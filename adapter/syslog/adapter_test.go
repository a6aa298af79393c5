//go:build !windows && !plan9

package syslogadapter

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/pulselog"
)

// listen starts a loopback UDP daemon stand-in and returns its address.
func listen(t *testing.T) (net.PacketConn, string) {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp loopback unavailable: %v", err)
	}
	t.Cleanup(func() { pc.Close() })
	return pc, pc.LocalAddr().String()
}

func readPacket(t *testing.T, pc net.PacketConn) string {
	t.Helper()
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 2048)
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read packet: %v", err)
	}
	return string(buf[:n])
}

func TestSyslogSink_PriorityAndTag(t *testing.T) {
	pc, addr := listen(t)
	s := New(Options{Network: "udp", Addr: addr})
	defer s.Close()

	s.Write(pulselog.LevelError, "svc", "ERROR: x", time.Now())

	got := readPacket(t, pc)
	// LOG_USER (8) | LOG_ERR (3)
	if !strings.HasPrefix(got, "<11>") {
		t.Fatalf("priority mismatch: %q", got)
	}
	if !strings.Contains(got, " svc[") || !strings.Contains(got, "ERROR: x") {
		t.Fatalf("tag or line missing: %q", got)
	}
}

func TestSyslogSink_DebugMapsToDebugPriority(t *testing.T) {
	pc, addr := listen(t)
	s := New(Options{Network: "udp", Addr: addr})
	defer s.Close()

	s.Write(pulselog.LevelDebug, "svc", "DEBUG: y", time.Now())

	// LOG_USER (8) | LOG_DEBUG (7)
	if got := readPacket(t, pc); !strings.HasPrefix(got, "<15>") {
		t.Fatalf("priority mismatch: %q", got)
	}
}

func TestSyslogSink_OneWriterPerTag(t *testing.T) {
	pc, addr := listen(t)
	s := New(Options{Network: "udp", Addr: addr})
	defer s.Close()

	s.Write(pulselog.LevelInfo, "a", "INFORMATIONAL: 1", time.Now())
	s.Write(pulselog.LevelInfo, "b", "INFORMATIONAL: 2", time.Now())
	s.Write(pulselog.LevelInfo, "a", "INFORMATIONAL: 3", time.Now())
	for i := 0; i < 3; i++ {
		readPacket(t, pc)
	}

	s.mu.Lock()
	n := len(s.writers)
	s.mu.Unlock()
	if n != 2 {
		t.Fatalf("expected 2 writers, got %d", n)
	}
}

func TestSyslogSink_DialErrorGoesToHandler(t *testing.T) {
	var got error
	s := New(Options{Network: "bogus", Addr: "nowhere", ErrorHandler: func(err error) { got = err }})

	s.Write(pulselog.LevelError, "svc", "ERROR: x", time.Now())

	if got == nil || !strings.Contains(got.Error(), "dial syslog") {
		t.Fatalf("expected dial error, got %v", got)
	}
}
