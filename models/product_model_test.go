package models

import "testing"

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 250, 0, 250},
		{"ten percent", 100, 10, 90},
		{"half off", 80, 50, 40},
		{"full discount", 60, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, Discount: tt.discount}
			if got := p.FinalPrice(); got != tt.want {
				t.Errorf("FinalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}
