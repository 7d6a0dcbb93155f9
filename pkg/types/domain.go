package types

// Model represents a discoverable GGUF model file in the models directory.
type Model struct {
	// Stable identifier for the model (the file name).
	// example: gemma-2-2b-it-q4_k_m.gguf
	ID string `json:"id" example:"gemma-2-2b-it-q4_k_m.gguf"`
	// Human-friendly name.
	// example: Gemma 2 2B IT (Q4_K_M)
	Name string `json:"name" example:"Gemma 2 2B IT (Q4_K_M)"`
	// Absolute path to the model file on disk.
	// example: /home/user/models/gemma-2-2b-it-q4_k_m.gguf
	Path string `json:"path" example:"/home/user/models/gemma-2-2b-it-q4_k_m.gguf"`
	// File size in bytes.
	// example: 1708583264
	SizeBytes int64 `json:"size_bytes" example:"1708583264"`
	// Content fingerprint (size + head digest). Stable across renames.
	// example: blake3:9f2c4d...
	Fingerprint string `json:"fingerprint,omitempty" example:"blake3:9f2c4d"`
}
