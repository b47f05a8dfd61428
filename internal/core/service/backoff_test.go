package service

import (
	"testing"
	"time"
)

func TestJitterBackoff_WithinWindow(t *testing.T) {
	policy := JitterBackoff(2*time.Millisecond, 50*time.Millisecond)

	for attempt := uint(1); attempt <= 10; attempt++ {
		for i := 0; i < 100; i++ {
			d := policy(attempt)
			if d <= 0 {
				t.Fatalf("attempt %d: expected positive delay, got %v", attempt, d)
			}
			if d > 50*time.Millisecond {
				t.Fatalf("attempt %d: delay %v exceeds cap", attempt, d)
			}
		}
	}
}

func TestJitterBackoff_WindowGrows(t *testing.T) {
	policy := JitterBackoff(time.Millisecond, time.Hour)

	// With a huge cap the window for attempt 10 is 512ms; sampling enough
	// draws, at least one should land beyond the attempt-1 window of 1ms.
	var beyondFirstWindow bool
	for i := 0; i < 200; i++ {
		if policy(10) > time.Millisecond {
			beyondFirstWindow = true
			break
		}
	}
	if !beyondFirstWindow {
		t.Error("expected attempt 10 window to extend past the base window")
	}
}

func TestJitterBackoff_ShiftOverflowFallsBackToCap(t *testing.T) {
	policy := JitterBackoff(time.Second, 10*time.Millisecond)

	// A large attempt number overflows the shifted window; the delay must
	// still respect the cap.
	for i := 0; i < 100; i++ {
		d := policy(64)
		if d <= 0 || d > 10*time.Millisecond {
			t.Fatalf("expected delay in (0, 10ms], got %v", d)
		}
	}
}
