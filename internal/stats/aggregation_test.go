package stats

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 42},
		{"pair", []float64{100, 200}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		costs  []float64
		want   float64
	}{
		{"both present", []float64{1000, 1200}, []float64{800, 900}, 250},
		{"no costs", []float64{1000}, nil, 0},
		{"no prices", nil, []float64{800}, 0},
		{"uneven lengths divide by prices", []float64{1000, 1000}, []float64{500}, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Margin(tt.prices, tt.costs); got != tt.want {
				t.Errorf("Margin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(10, 0); got != 0 {
		t.Errorf("SafeDiv(10, 0) = %v, want 0", got)
	}
	if got := SafeDiv(10, 4); got != 2.5 {
		t.Errorf("SafeDiv(10, 4) = %v, want 2.5", got)
	}
}
