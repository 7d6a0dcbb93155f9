package bridge

import (
	"context"
	"sync"
	"time"
)

// fakeRuntime is a lightweight in-memory runtime used for tests. It
// scripts the token stream and can inject failures per stage.
type fakeRuntime struct {
	mu      sync.Mutex
	initErr error
	openErr error
	opens   int
	closes  int

	tokens     []string
	genErr     error
	errAfter   int // fail after this many tokens when genErr is set
	tokenDelay time.Duration
	stateSize  int64
}

func (f *fakeRuntime) Name() string { return "fake" }

func (f *fakeRuntime) Init() error { return f.initErr }

func (f *fakeRuntime) Shutdown() {}

func (f *fakeRuntime) Open(path string, cfg ModelConfig) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.opens++
	return &fakeSession{f: f, path: path, cfg: cfg}, nil
}

func (f *fakeRuntime) counts() (opens, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens, f.closes
}

type fakeSession struct {
	f    *fakeRuntime
	path string
	cfg  ModelConfig
}

func (s *fakeSession) Generate(ctx context.Context, prompt string, params GenerateParams, onToken func(string) error) (Result, error) {
	var out string
	for i, tok := range s.f.tokens {
		if s.f.genErr != nil && i == s.f.errAfter {
			return Result{Text: out, Tokens: i}, s.f.genErr
		}
		select {
		case <-ctx.Done():
			return Result{Text: out, Tokens: i}, ctx.Err()
		default:
		}
		if s.f.tokenDelay > 0 {
			time.Sleep(s.f.tokenDelay)
		}
		if err := onToken(tok); err != nil {
			return Result{Text: out + tok, Tokens: i + 1, FinishReason: "stop"}, err
		}
		out += tok
	}
	// Scripted stream exhausted: simulated end-of-sequence.
	return Result{Text: out, Tokens: len(s.f.tokens), FinishReason: "stop"}, nil
}

func (s *fakeSession) StateSize() int64 { return s.f.stateSize }

func (s *fakeSession) Close() error {
	s.f.mu.Lock()
	s.f.closes++
	s.f.mu.Unlock()
	return nil
}

// newReadyEngine returns an initialized engine over rt.
func newReadyEngine(rt Runtime) *Engine {
	e := New(rt, Config{})
	if err := e.Initialize(); err != nil {
		panic(err)
	}
	return e
}

// collector is a TokenSink recording every fragment in order.
type collector struct {
	mu    sync.Mutex
	parts []string
}

func (c *collector) OnToken(fragment string) {
	c.mu.Lock()
	c.parts = append(c.parts, fragment)
	c.mu.Unlock()
}

func (c *collector) joined() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := ""
	for _, p := range c.parts {
		out += p
	}
	return out
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.parts)
}
