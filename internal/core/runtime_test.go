package core

import "testing"

func TestTickMillis(t *testing.T) {
	tests := []struct {
		rate     int
		expected int
	}{
		{60, 16},
		{20, 50},
		{10, 100},
		{0, 16},   // falls back to 60
		{5000, 1}, // never below 1ms
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickMillis(); got != tc.expected {
			t.Errorf("TickMillis() at %d fps = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventLock, Count: 1}, {Kind: EventLineClear, Count: 2}}}
	if !r.Has(EventLineClear) {
		t.Error("expected line clear event")
	}
	if r.Has(EventFoodEaten) {
		t.Error("unexpected food event")
	}
}
