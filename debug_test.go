package burrow

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStderr runs fn and returns what it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := NewSprite("child", nil)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	s.Stage().AddChild(child)
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetDebugMode(false)

	child := NewSprite("child", nil)
	child.Dispose()

	s.Stage().AddChild(child) // must not panic outside debug mode
	if s.Stage().NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", s.Stage().NumChildren())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxChildCount+1; i++ {
			s.Stage().AddChild(NewContainer(""))
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_TickTimings(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	s.Ticker().Add(func(float64) {})

	output := captureStderr(t, func() { s.Advance(1) })
	if !strings.Contains(output, "tick:") || !strings.Contains(output, "subscribers: 1") {
		t.Errorf("expected tick timing line, got: %q", output)
	}
}

func TestDebugLogDraw(t *testing.T) {
	s := NewSurface(100, 100)
	s.drawCount = 3
	output := captureStderr(t, func() { s.debugLogDraw(time.Millisecond) })
	if !strings.Contains(output, "draw calls: 3") {
		t.Errorf("expected draw call count, got: %q", output)
	}
}
