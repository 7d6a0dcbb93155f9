package bridge

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// errTokenLimit is a private stop signal threaded through the onToken
// callback once MaxTokens fragments have been delivered.
var errTokenLimit = errors.New("token limit reached")

// GenerateOptions carries one generation request. Immutable once submitted.
type GenerateOptions struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
	// Seed overrides the engine's configured seed for this call; 0 keeps it.
	Seed int64
	// Stop sequences end generation when matched by the runtime.
	Stop []string
}

// Generate runs one generation over the loaded model, invoking sink once
// per decoded token in generation order. It blocks for the whole decode
// loop while holding the model lock: concurrent callers are fully
// serialized, and the second caller's sink sees nothing until the first
// caller's sink saw its final fragment.
//
// The returned string is exactly the concatenation of the delivered
// fragments. On a mid-generation failure the text produced so far is
// returned together with a generation error; the model stays loaded.
// With no model loaded the result is ("", ErrNoModelLoaded()) and the
// sink is never invoked.
func (e *Engine) Generate(ctx context.Context, prompt string, maxTokens int, temperature float32, sink TokenSink) (string, error) {
	return e.GenerateWithOptions(ctx, GenerateOptions{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, sink)
}

// GenerateWithOptions is Generate with the full option set.
func (e *Engine) GenerateWithOptions(ctx context.Context, opts GenerateOptions, sink TokenSink) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.getState() {
	case StateClosed:
		return "", closedError{}
	case StateLoaded:
		// proceed
	default:
		// Reportable misuse, not a crash: no state is altered and the
		// sink is never invoked.
		return "", ErrNoModelLoaded()
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	seed := opts.Seed
	if seed == 0 {
		seed = e.cfg.Seed
	}

	sid := uuid.NewString()
	log := e.log.With().Str("session", sid).Logger()
	log.Debug().Int("prompt_len", len(opts.Prompt)).Int("max_tokens", maxTokens).Msg("generate start")

	// Per-call transient state: accumulated output and token count.
	var b strings.Builder
	emitted := 0
	onToken := func(fragment string) error {
		if emitted >= maxTokens {
			return errTokenLimit
		}
		if sink != nil {
			sink.OnToken(fragment)
		}
		b.WriteString(fragment)
		emitted++
		tokensTotal.Inc()
		if emitted >= maxTokens {
			return errTokenLimit
		}
		return nil
	}

	start := time.Now()
	res, err := e.sess.Generate(ctx, opts.Prompt, GenerateParams{
		MaxTokens:   maxTokens,
		Temperature: opts.Temperature,
		Seed:        seed,
		Stop:        opts.Stop,
	}, onToken)
	generateDuration.Observe(time.Since(start).Seconds())

	// Hitting the token budget is a normal stop condition, not a failure;
	// runtimes surface the callback's stop signal verbatim.
	if errors.Is(err, errTokenLimit) {
		err = nil
		res.FinishReason = "length"
	}

	text := b.String()
	if err != nil {
		// Partial result: whatever was produced before the failing stage.
		if ctx.Err() != nil {
			log.Warn().Int("tokens", emitted).Msg("generate canceled")
			generationsTotal.WithLabelValues("canceled").Inc()
			return text, ctx.Err()
		}
		gerr := err
		if !IsGenerationFailed(gerr) && !IsDependencyUnavailable(gerr) {
			gerr = ErrGeneration(StageDecode, err)
		}
		e.setLastErr(gerr)
		generationsTotal.WithLabelValues("failure").Inc()
		log.Error().Err(err).Str("stage", GenerationStage(gerr)).Int("tokens", emitted).Msg("generate failed")
		e.pub.Publish(Event{Name: "generate_failed", ModelID: e.modelID(), Fields: map[string]any{"stage": GenerationStage(gerr)}})
		return text, gerr
	}

	e.smu.Lock()
	e.gens++
	e.smu.Unlock()
	generationsTotal.WithLabelValues("success").Inc()
	log.Debug().Int("tokens", emitted).Str("finish", res.FinishReason).Dur("dur", time.Since(start)).Msg("generate done")
	e.pub.Publish(Event{Name: "generate_done", ModelID: e.modelID(), Fields: map[string]any{"tokens": emitted}})
	return text, nil
}

func (e *Engine) modelID() string {
	e.smu.RLock()
	defer e.smu.RUnlock()
	if e.info == nil {
		return ""
	}
	return e.info.ID
}
