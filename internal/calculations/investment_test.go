package calculations

import (
	"testing"
)

func TestTaxDeduction(t *testing.T) {
	tests := []struct {
		name      string
		fullPrice float64
		want      float64
	}{
		{name: "capped deduction", fullPrice: 5000000, want: 260000},
		{name: "below cap", fullPrice: 1000000, want: 130000},
		{name: "exactly at cap", fullPrice: 2000000, want: 260000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxDeduction(tt.fullPrice); got != tt.want {
				t.Errorf("TaxDeduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalRealEstatePrice(t *testing.T) {
	if got := FinalRealEstatePrice(newInput(12000000, 0, 20, 8.49, 22000, 4, 500000, 8)); got != 14642280.48 {
		t.Errorf("FinalRealEstatePrice() = %v, want 14642280.48", got)
	}
	if got := FinalRealEstatePrice(newInput(4200000, 1969000, 20, 8.49, 22000, 4, 500000, 8)); got != 5124798.17 {
		t.Errorf("FinalRealEstatePrice() = %v, want 5124798.17", got)
	}
}

func TestCompounding(t *testing.T) {
	tests := []struct {
		name    string
		compute func() float64
		want    float64
	}{
		{
			name: "with annuity payments",
			compute: func() float64 {
				return CompoundingWithAnnuityPayments(newInput(6000000, 5400000, 25, 6.49, 25000, 4, 1500000, 8), 36427.45)
			},
			want: 50057835.96,
		},
		{
			name: "without payments",
			compute: func() float64 {
				return CompoundingWithoutPayments(newInput(4200000, 1969000, 20, 8.49, 22000, 4, 500000, 8))
			},
			want: 13455098.37,
		},
		{
			name: "without first payment",
			compute: func() float64 {
				return CompoundingWithoutFirstPayment(newInput(4200000, 1969000, 20, 8.49, 22000, 4, 500000, 8), 17075)
			},
			want: 2900925.55,
		},
		{
			name: "without first payment when rent is lower than payment",
			compute: func() float64 {
				return CompoundingWithoutFirstPayment(newInput(4200000, 3700000, 20, 8.49, 22000, 4, 500000, 8), 32086.05)
			},
			want: 5940889.36,
		},
		{
			name: "without first payment when fully paid",
			compute: func() float64 {
				return CompoundingWithoutFirstPayment(newInput(4200000, 0, 20, 8.49, 22000, 4, 500000, 8), 0)
			},
			want: 12958449.14,
		},
		{
			name: "zero debit rate keeps lump sum",
			compute: func() float64 {
				return CompoundingWithoutPayments(newInput(3000000, 2000000, 10, 10, 30000, 5, 250000, 0))
			},
			want: 1250000,
		},
		{
			name: "zero debit rate sums payments",
			compute: func() float64 {
				return CompoundingWithoutFirstPayment(newInput(3000000, 2000000, 10, 10, 30000, 5, 0, 0), 25000)
			},
			want: 600000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.compute(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalGainsForRenting(t *testing.T) {
	tests := []struct {
		name  string
		input ComparisonInput
		want  float64
	}{
		{
			name:  "payment is more than rent",
			input: newInput(12000000, 7000000, 20, 8.49, 22000, 4, 500000, 8),
			want:  49894466.76,
		},
		{
			name:  "payment is less than rent",
			input: newInput(12000000, 2000000, 20, 8.49, 30000, 4, 500000, 8),
			want:  51731429.09,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalGainsForRenting(tt.input, AnnuityPayment(tt.input))
			if got != tt.want {
				t.Errorf("TotalGainsForRenting() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalGainsForBuying(t *testing.T) {
	tests := []struct {
		name  string
		input ComparisonInput
		want  float64
	}{
		{
			name:  "fully paid",
			input: newInput(12000000, 0, 20, 8.49, 22000, 4, 500000, 8),
			want:  27860729.62,
		},
		{
			name:  "payment is more than rent",
			input: newInput(12000000, 3500000, 20, 8.49, 22000, 4, 500000, 8),
			want:  14902280.48,
		},
		{
			name:  "large loan",
			input: newInput(12000000, 10000000, 20, 8.49, 22000, 4, 500000, 8),
			want:  14902280.48,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalGainsForBuying(tt.input, AnnuityPayment(tt.input))
			if got != tt.want {
				t.Errorf("TotalGainsForBuying() = %v, want %v", got, tt.want)
			}
		})
	}
}
