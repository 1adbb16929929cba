package cube

import "testing"

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{8, 40320},
		{12, 479001600},
	}
	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Factorial(-1) should panic")
		}
	}()
	Factorial(-1)
}

func TestPower(t *testing.T) {
	tests := []struct {
		base, exponent, want int
	}{
		{2, 0, 1},
		{2, 10, 1024},
		{3, 7, 2187},
		{5, 1, 5},
	}
	for _, tt := range tests {
		if got := Power(tt.base, tt.exponent); got != tt.want {
			t.Errorf("Power(%d, %d) = %d, want %d", tt.base, tt.exponent, got, tt.want)
		}
	}
}

func TestPowerPanicsOnNegativeExponent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Power(2, -1) should panic")
		}
	}()
	Power(2, -1)
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{12, 4, 495},
		{8, 0, 1},
		{8, 8, 1},
		{5, 2, 10},
		{5, 6, 0},  // k > n
		{5, -1, 0}, // k < 0
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}
