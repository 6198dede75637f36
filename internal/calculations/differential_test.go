package calculations

import (
	"testing"
)

func TestDifferentiatedMonthlyPayment(t *testing.T) {
	in := newInput(6000000, 5400000, 25, 6.49, 25000, 4, 1500000, 8)
	if got := DifferentiatedMonthlyPayment(in, 1969000); got != 28649.01 {
		t.Errorf("DifferentiatedMonthlyPayment() = %v, want 28649.01", got)
	}
}

func TestDifferentiatedTotal(t *testing.T) {
	tests := []struct {
		name  string
		input ComparisonInput
		want  float64
	}{
		{
			name:  "twenty five years",
			input: newInput(6000000, 5400000, 25, 6.49, 25000, 4, 1500000, 8),
			want:  9795352.5,
		},
		{
			name:  "twenty years",
			input: newInput(4200000, 1969000, 20, 8.49, 22000, 4, 500000, 8),
			want:  3647646.32,
		},
		{
			name:  "fully paid",
			input: newInput(6000000, 0, 25, 6.49, 25000, 4, 1500000, 8),
			want:  0,
		},
		{
			name:  "zero horizon",
			input: newInput(3000000, 2000000, 0, 10, 30000, 5, 0, 8),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DifferentiatedTotal(tt.input); got != tt.want {
				t.Errorf("DifferentiatedTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifferentialSchedule(t *testing.T) {
	result := DifferentialSchedule(newInput(4200000, 1969000, 20, 8.49, 22000, 4, 500000, 8))

	if len(result.Schedule) != 240 {
		t.Errorf("expected 240 months, got %d", len(result.Schedule))
	}

	summary := result.Summary
	if summary.FirstMonthPayment != 22134.84 {
		t.Errorf("expected first month payment 22134.84, got %v", summary.FirstMonthPayment)
	}
	if summary.LastMonthPayment != 8262.21 {
		t.Errorf("expected last month payment 8262.21, got %v", summary.LastMonthPayment)
	}
	if summary.FirstMonthPayment <= summary.LastMonthPayment {
		t.Error("first month payment should be greater than last month payment")
	}
	if summary.TotalPaid != 3647646.32 {
		t.Errorf("expected total paid 3647646.32, got %v", summary.TotalPaid)
	}
	if summary.TotalInterest != 1678646.32 {
		t.Errorf("expected total interest 1678646.32, got %v", summary.TotalInterest)
	}

	// Проверяем, что остаток в последнем месяце равен 0
	lastMonth := result.Schedule[len(result.Schedule)-1]
	if lastMonth.RemainingPrincipal != 0 {
		t.Errorf("expected remaining principal 0, got %f", lastMonth.RemainingPrincipal)
	}
}
