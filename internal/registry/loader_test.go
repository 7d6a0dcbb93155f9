package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModel(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadDir_FiltersAndSorts(t *testing.T) {
	d := t.TempDir()
	writeModel(t, d, "b-model.gguf", []byte("bbbb"))
	writeModel(t, d, "a-model.gguf", []byte("aaaa"))
	writeModel(t, d, "notes.txt", []byte("skip"))
	if err := os.Mkdir(filepath.Join(d, "sub.gguf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	models, err := LoadDir(d)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2: %+v", len(models), models)
	}
	if models[0].ID != "a-model.gguf" || models[1].ID != "b-model.gguf" {
		t.Fatalf("unexpected order: %+v", models)
	}
	if models[0].SizeBytes != 4 {
		t.Fatalf("size = %d, want 4", models[0].SizeBytes)
	}
	if models[0].Fingerprint == "" || models[0].Fingerprint == models[1].Fingerprint {
		t.Fatalf("fingerprints not distinct: %q vs %q", models[0].Fingerprint, models[1].Fingerprint)
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestFingerprint_StableAcrossRename(t *testing.T) {
	d := t.TempDir()
	p := writeModel(t, d, "m.gguf", []byte("same content"))
	fp1, err := Fingerprint(p)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	renamed := filepath.Join(d, "renamed.gguf")
	if err := os.Rename(p, renamed); err != nil {
		t.Fatalf("rename: %v", err)
	}
	fp2, err := Fingerprint(renamed)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp1 != fp2 {
		t.Fatalf("fingerprint changed across rename: %q vs %q", fp1, fp2)
	}
}

func TestRegistry_ResolveAndRescan(t *testing.T) {
	d := t.TempDir()
	writeModel(t, d, "first.gguf", []byte("1111"))

	reg, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := reg.Resolve("first.gguf"); !ok {
		t.Fatalf("first.gguf not resolved")
	}
	if _, ok := reg.Resolve("second.gguf"); ok {
		t.Fatalf("second.gguf resolved before it exists")
	}

	writeModel(t, d, "second.gguf", []byte("2222"))
	if err := reg.Rescan(); err != nil {
		t.Fatalf("Rescan: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	if _, ok := reg.Resolve("second.gguf"); !ok {
		t.Fatalf("second.gguf not resolved after rescan")
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"gemma-2-2b-it-q4_k_m.gguf": "gemma 2 2b it q4 k m",
		"plain.gguf":                "plain",
	}
	for in, want := range cases {
		if got := displayName(in); got != want {
			t.Fatalf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}
