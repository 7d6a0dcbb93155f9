package bridge

// TokenSink consumes one decoded text fragment per generated token.
// OnToken is called synchronously from within Generate, strictly in
// generation order, before the next token is requested. Implementations
// that need another execution context (a UI thread, an HTTP flusher)
// marshal the fragment themselves; the engine never buffers or reorders.
type TokenSink interface {
	OnToken(fragment string)
}

// SinkFunc adapts a plain function to a TokenSink.
type SinkFunc func(fragment string)

func (f SinkFunc) OnToken(fragment string) { f(fragment) }
