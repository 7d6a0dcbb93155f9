package types

// GenerateRequest represents a generation request payload.
type GenerateRequest struct {
	// Optional model identifier. If empty, the server default is used.
	// example: gemma-2-2b-it-q4_k_m.gguf
	Model string `json:"model,omitempty" example:"gemma-2-2b-it-q4_k_m.gguf"`
	// Required prompt text to generate a completion for.
	// example: List three VFR weather minima.
	Prompt string `json:"prompt" example:"List three VFR weather minima."`
	// Maximum number of new tokens to generate.
	// example: 128
	MaxTokens int `json:"max_tokens,omitempty" example:"128"`
	// Sampling temperature (higher = more random).
	// example: 0.7
	Temperature float64 `json:"temperature,omitempty" example:"0.7"`
	// Random seed for reproducibility; 0 or omitted uses the engine default.
	// example: 42
	Seed int64 `json:"seed,omitempty" example:"42"`
	// Optional stop sequences. Generation stops when any sequence is matched.
	// example: ["\n\n","END"]
	Stop []string `json:"stop,omitempty" example:"[\"\\n\\n\",\"END\"]"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of available models.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// LoadedModelStatus describes the currently loaded model for /status.
type LoadedModelStatus struct {
	// ID of the loaded model.
	// example: gemma-2-2b-it-q4_k_m.gguf
	ModelID string `json:"model_id" example:"gemma-2-2b-it-q4_k_m.gguf"`
	// Absolute path of the loaded model file.
	Path string `json:"path"`
	// Number of layers offloaded to the GPU.
	// example: 0
	GPULayers int `json:"gpu_layers" example:"0"`
	// Time the model was loaded (unix seconds).
	// example: 1700000000
	LoadedAt int64 `json:"loaded_at_unix" example:"1700000000"`
	// Approximate resident state size in bytes.
	// example: 2147483648
	MemoryBytes int64 `json:"memory_bytes" example:"2147483648"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Engine lifecycle state (uninitialized, ready, loaded, closed).
	// example: loaded
	State string `json:"state" example:"loaded"`
	// Currently loaded model, if any.
	Loaded *LoadedModelStatus `json:"loaded,omitempty"`
	// Number of models visible in the registry.
	// example: 3
	RegistryCount int `json:"registry_count" example:"3"`
	// Current admission queue length.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Number of generations currently in flight (0 or 1).
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Maximum queued requests before backpressure triggers.
	// example: 16
	MaxQueueDepth int `json:"max_queue_depth" example:"16"`
	// Total number of model loads since start.
	// example: 4
	LoadsTotal uint64 `json:"loads_total" example:"4"`
	// Total number of completed generations since start.
	// example: 57
	GenerationsTotal uint64 `json:"generations_total" example:"57"`
	// Last error observed by the service (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
