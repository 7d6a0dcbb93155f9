package httpapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"bogus": LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%d want %d", in, got, want)
		}
	}
}

func TestRequestLogLevel_QueryOverride(t *testing.T) {
	r := httptest.NewRequest("POST", "/generate?log=debug", nil)
	if lvl := requestLogLevel(r); lvl != LevelDebug {
		t.Fatalf("lvl=%d", lvl)
	}
	r = httptest.NewRequest("POST", "/generate?log=1", nil)
	if lvl := requestLogLevel(r); lvl != LevelDebug {
		t.Fatalf("lvl=%d", lvl)
	}
	r = httptest.NewRequest("POST", "/generate", nil)
	r.Header.Set("X-Log-Level", "error")
	if lvl := requestLogLevel(r); lvl != LevelError {
		t.Fatalf("lvl=%d", lvl)
	}
}

func TestLoggingLineWriter_SplitsLines(t *testing.T) {
	lw := &loggingLineWriter{}
	if _, err := lw.Write([]byte("{\"token\":\"a\"}\n{\"tok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if string(lw.buf) != "{\"tok" {
		t.Fatalf("residual buf=%q", lw.buf)
	}
	if _, err := lw.Write([]byte("en\":\"b\"}\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(lw.buf) != 0 {
		t.Fatalf("buf not drained: %q", lw.buf)
	}
}

func TestItoa(t *testing.T) {
	for n, want := range map[int]string{0: "0", 200: "200", 404: "404", 1234: "1234"} {
		if got := itoa(n); got != want {
			t.Fatalf("itoa(%d)=%q", n, got)
		}
	}
}

func TestJoinContexts_CancelPropagates(t *testing.T) {
	a, cancelA := context.WithCancel(context.Background())
	joined, cancel := joinContexts(a, context.Background())
	defer cancel()
	cancelA()
	select {
	case <-joined.Done():
	case <-time.After(time.Second):
		t.Fatalf("joined context did not observe cancellation")
	}
}
