package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should report a due tick")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no tick")
	}

	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, expected no tick")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full step elapsed, expected a tick")
	}

	clock = clock.Add(250 * time.Millisecond)
	ticks := 0
	for fs.ShouldStep() {
		ticks++
	}
	if ticks != 2 {
		t.Fatalf("expected 2 catch-up ticks, got %d", ticks)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got step %v", fs.Step())
	}
}
