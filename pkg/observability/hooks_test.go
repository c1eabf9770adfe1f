package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	l := NoopLayoutHooks{}
	l.OnResize(1024)
	l.OnColumnsChanged(4, 5)
	l.OnRecompute("tiles", 5, 37, time.Millisecond, nil)
	l.OnRecompute("resize", 0, 0, 0, errors.New("bad table"))

	s := NoopSamplingHooks{}
	s.OnReseed(42)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Sampling().(NoopSamplingHooks); !ok {
		t.Error("Sampling() should return NoopSamplingHooks by default")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customSampling := &testSamplingHooks{}
	SetSamplingHooks(customSampling)
	if Sampling() != customSampling {
		t.Error("SetSamplingHooks should set custom hooks")
	}

	Layout().OnRecompute("tiles", 2, 3, time.Second, nil)
	if customLayout.recomputes != 1 {
		t.Errorf("recomputes = %d, want 1", customLayout.recomputes)
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
	if _, ok := Sampling().(NoopSamplingHooks); !ok {
		t.Error("Reset() should restore NoopSamplingHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct {
	NoopLayoutHooks
	recomputes int
}

func (h *testLayoutHooks) OnRecompute(string, int, int, time.Duration, error) { h.recomputes++ }

type testSamplingHooks struct{ NoopSamplingHooks }
