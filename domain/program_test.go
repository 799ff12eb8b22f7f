package domain

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		program Program
		want    string
	}{
		{name: "both bounds", program: Program{MinAge: intPtr(5), MaxAge: intPtr(10)}, want: "5-10 years"},
		{name: "min only", program: Program{MinAge: intPtr(7)}, want: "7+ years"},
		{name: "max only", program: Program{MaxAge: intPtr(12)}, want: "Up to 12 years"},
		{name: "no bounds", program: Program{}, want: "All ages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.program.AgeRange(); got != tt.want {
				t.Errorf("AgeRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		name    string
		program Program
		want    string
	}{
		{name: "monthly only", program: Program{PricePerMonth: floatPtr(25000)}, want: "25,000₸/month"},
		{name: "per session only", program: Program{PricePerSession: floatPtr(3500)}, want: "3,500₸/session"},
		{
			name:    "both options",
			program: Program{PricePerMonth: floatPtr(25000), PricePerSession: floatPtr(3500)},
			want:    "25,000₸/month or 3,500₸/session",
		},
		{name: "no pricing", program: Program{}, want: "Contact for pricing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.program.PriceDisplay(); got != tt.want {
				t.Errorf("PriceDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}
