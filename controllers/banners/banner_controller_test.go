package bannerController

import "testing"

func TestCanAddImages(t *testing.T) {
	tests := []struct {
		name    string
		current int
		added   int
		want    bool
	}{
		{"empty plus one", 0, 1, true},
		{"fills the cap", 1, 3, true},
		{"one over the cap", 2, 3, false},
		{"already full", 4, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAddImages(tt.current, tt.added); got != tt.want {
				t.Errorf("canAddImages(%d, %d) = %v, want %v", tt.current, tt.added, got, tt.want)
			}
		})
	}
}
