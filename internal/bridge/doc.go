// Package bridge owns the lifecycle of at most one loaded model/context
// pair and serializes every operation on it behind a single lock. It is
// structured into small files by concern:
//
//   - engine.go: core Engine type, constructor, lifecycle ops (Initialize,
//     LoadModel, IsLoaded, Unload, Shutdown, MemoryUsage, Snapshot).
//   - generate.go: the Generate entry point, token accounting, and
//     partial-result failure handling.
//   - config.go: Config and package defaults (context window, batch size).
//   - types.go: lifecycle states and read-only projections.
//   - runtime.go: Runtime/Session interfaces abstracting the native
//     inference library.
//   - errors.go: error value types and predicates (IsNoModelLoaded, ...).
//   - events.go: lifecycle event publishing.
//   - sink.go: TokenSink and adapters.
//   - metrics.go: Prometheus collectors.
//
// Build tags and runtimes:
//
//   - purego yzma (default native option): `-tags=yzma`. Drives llama.cpp
//     through FFI with the decode loop implemented in runtime_yzma.go.
//   - in-process go-llama.cpp (CGO): `-tags=llama`. Files:
//     runtime_llama.go, llama_cgo.go (linker rpath hints).
//   - neither tag: runtime_stub.go compiles a stub whose Open fails with a
//     dependency-unavailable error, keeping default builds and CI CGO-free.
//     No mocked inference in production binaries.
//
// Every operation resolves to a return value; no failure crosses this
// package boundary as a panic.
package bridge
