package payment

import "testing"

func TestSubunits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{500, 50000},
		{499.99, 49999},
		{0.01, 1},
		{0, 0},
		{1234.56, 123456},
	}

	for _, c := range cases {
		if got := subunits(c.amount); got != c.want {
			t.Fatalf("subunits(%v): expected %d, got %d", c.amount, c.want, got)
		}
	}
}
