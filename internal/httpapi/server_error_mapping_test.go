package httpapi

import (
	"errors"
	"net/http"
	"testing"

	"flyfund/internal/bridge"
	"flyfund/internal/service"
)

func TestGenerate_ModelNotFoundMaps404(t *testing.T) {
	r := NewMux(&mockService{genErr: service.ErrModelNotFound("m-missing")})
	w := postGenerate(t, r, `{"prompt":"hi"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGenerate_TooBusyMaps429(t *testing.T) {
	r := NewMux(&mockService{genErr: service.ErrTooBusy()})
	w := postGenerate(t, r, `{"prompt":"hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestGenerate_DependencyUnavailableMaps503(t *testing.T) {
	r := NewMux(&mockService{genErr: bridge.ErrDependencyUnavailable("local inference not built")})
	w := postGenerate(t, r, `{"prompt":"hi"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestGenerate_LoadFailureMaps409(t *testing.T) {
	r := NewMux(&mockService{genErr: bridge.ErrLoadFailed("/m/x.gguf", errors.New("corrupt header"))})
	w := postGenerate(t, r, `{"prompt":"hi"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestGenerate_UnknownErrorMaps500(t *testing.T) {
	r := NewMux(&mockService{genErr: errors.New("boom")})
	w := postGenerate(t, r, `{"prompt":"hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
