package moneyfmt

import (
	"math"
	"testing"
)

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := New(Config{Currencies: []string{"usd", "eur", "rub"}})
	if err != nil {
		t.Fatalf("New(...) failed: %v", err)
	}
	return f
}

func TestFormatter_Float(t *testing.T) {
	f := newTestFormatter(t)
	tests := []struct {
		cents int64
		want  float64
	}{
		{0, 0},
		{1, 0.01},
		{500, 5},
		{550, 5.5},
		{-550, -5.5},
		{123456, 1234.56},
		{123456700, 1234567},
	}
	for _, tt := range tests {
		got := f.Float(tt.cents)
		if got != tt.want {
			t.Errorf("Float(%v) = %v, want %v", tt.cents, got, tt.want)
		}
	}
}

func TestFormatter_Cents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFormatter(t)
		tests := []struct {
			x    float64
			want int64
		}{
			{0, 0},
			{5, 500},
			{5.5, 550},
			{-5.5, -550},
			{1234.56, 123456},
			{0.004, 0},
			{0.006, 1},
			{15.504, 1550},
			{15.506, 1551},
		}
		for _, tt := range tests {
			got, err := f.Cents(tt.x)
			if err != nil {
				t.Errorf("Cents(%v) failed: %v", tt.x, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Cents(%v) = %v, want %v", tt.x, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		f := newTestFormatter(t)
		tests := map[string]float64{
			"nan":        math.NaN(),
			"+inf":       math.Inf(1),
			"-inf":       math.Inf(-1),
			"overflow 1": 1e18,
			"overflow 2": -1e18,
		}
		for name, x := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := f.Cents(x)
				if err == nil {
					t.Errorf("Cents(%v) did not fail", x)
				}
			})
		}
	})
}

func TestFloatCentsRoundTrip(t *testing.T) {
	f := newTestFormatter(t)
	for n := int64(-100000); n <= 100000; n++ {
		got, err := f.Cents(f.Float(n))
		if err != nil {
			t.Fatalf("Cents(Float(%v)) failed: %v", n, err)
		}
		if got != n {
			t.Fatalf("Cents(Float(%v)) = %v, want %v", n, got, n)
		}
	}
	for _, n := range []int64{1 << 40, -(1 << 40), 123456789012345} {
		got, err := f.Cents(f.Float(n))
		if err != nil {
			t.Fatalf("Cents(Float(%v)) failed: %v", n, err)
		}
		if got != n {
			t.Errorf("Cents(Float(%v)) = %v, want %v", n, got, n)
		}
	}
}

func TestFormatter_ParseCents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFormatter(t)
		tests := []struct {
			s    string
			opts []Option
			want int64
		}{
			{"0", nil, 0},
			{"5", nil, 500},
			{"5,5", nil, 550},
			{"12,34", nil, 1234},
			{"12,", nil, 1200},
			{"1 234,56", nil, 123456},
			{"1 234 567", nil, 123456700},
			{"  15,00  ", nil, 1500},
			{"-5,50", nil, -550},
			{"12,346", nil, 1235},
			{"1,234.56", []Option{WithDecimalPoint("."), WithThousandsSeparator(",")}, 123456},
		}
		for _, tt := range tests {
			got, err := f.ParseCents(tt.s, tt.opts...)
			if err != nil {
				t.Errorf("ParseCents(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCents(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		f := newTestFormatter(t)
		tests := map[string]string{
			"empty":            "",
			"letters":          "abc",
			"double point":     "12,34,56",
			"foreign grouping": "1.234,56",
			"overflow":         "999 999 999 999 999 999 999",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := f.ParseCents(s)
				if err == nil {
					t.Errorf("ParseCents(%q) did not fail", s)
				}
			})
		}
	})
}

func TestFormatter_ParseFloat(t *testing.T) {
	f := newTestFormatter(t)
	tests := []struct {
		s    string
		want float64
	}{
		{"5", 5},
		{"15,50", 15.5},
		{"1 234,56", 1234.56},
	}
	for _, tt := range tests {
		got, err := f.ParseFloat(tt.s)
		if err != nil {
			t.Errorf("ParseFloat(%q) failed: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
