package router

import (
	"testing"
)

func TestNewRouter_WiresGenerationLimiter(t *testing.T) {
	r := NewRouter(nil, nil, nil, nil)
	if r.generationLimiter == nil {
		t.Fatal("expected the router to carry its own generation limiter")
	}

	other := NewRouter(nil, nil, nil, nil)
	if r.generationLimiter == other.generationLimiter {
		t.Error("expected each router to get an independent limiter")
	}
}
