package statsController

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 535, time.UTC)
	got := startOfDay(now)
	want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("startOfDay(%v) = %v, want %v", now, got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 535, time.UTC)
	got := startOfMonth(now)
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("startOfMonth(%v) = %v, want %v", now, got, want)
	}
}
