package calculations

import (
	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

// TotalAnnuityPayments рассчитывает сумму всех аннуитетных платежей
func TotalAnnuityPayments(in ComparisonInput, monthlyPayment float64) float64 {
	if in.FullyPaid() {
		return 0.0
	}
	return utils.Round2(monthlyPayment * float64(in.PeriodInMonths()))
}

// RentForWholePeriod рассчитывает аренду за весь срок с ежегодной индексацией.
// Индексация применяется после взноса года, поэтому первый год идет по исходной ставке.
func RentForWholePeriod(in ComparisonInput) float64 {
	adjustedMonthlyRent := in.MonthlyRent
	total := 0.0

	for year := 1; year <= in.YearsOfLoan; year++ {
		total += adjustedMonthlyRent * 12
		adjustedMonthlyRent += adjustedMonthlyRent * in.RentInflationRate / 100
	}

	return utils.Round2(total)
}

// InsuranceForWholePeriod рассчитывает страховку за весь срок.
// Каждый год страхуется остаток долга на начало года.
func InsuranceForWholePeriod(in ComparisonInput, monthlyPayment, insurancePercent float64, differentiated bool) float64 {
	if in.FullyPaid() {
		return 0.0
	}

	total := 0.0
	for i, entry := range LoanSchedule(in, monthlyPayment, differentiated) {
		if i%12 == 0 {
			total += entry.StartingBalance * insurancePercent / 100
		}
	}

	return utils.Round2(total)
}

// TaxForWholePeriod рассчитывает налог на имущество за весь срок без капитализации
func TaxForWholePeriod(in ComparisonInput, taxRate float64) float64 {
	return in.FullPrice * taxRate / 100 * float64(in.YearsOfLoan)
}

// TotalLossesAnnuity рассчитывает итоговые расходы покупателя при аннуитетной схеме
func TotalLossesAnnuity(in ComparisonInput, finalRealEstatePrice float64) float64 {
	monthlyPayment := AnnuityPayment(in)
	annuityPayments := TotalAnnuityPayments(in, monthlyPayment)
	tax := TaxForWholePeriod(in, in.TaxRate)
	insurance := InsuranceForWholePeriod(in, monthlyPayment, in.InsuranceRate, false)

	return utils.Round2(annuityPayments + tax + insurance +
		in.RenovationCost + in.FirstPayment() - finalRealEstatePrice)
}

// TotalLossesDifferentiated рассчитывает итоговые расходы покупателя при дифференцированной схеме
func TotalLossesDifferentiated(in ComparisonInput, finalRealEstatePrice float64) float64 {
	differentiatedPayments := DifferentiatedTotal(in)
	tax := TaxForWholePeriod(in, in.TaxRate)
	insurance := InsuranceForWholePeriod(in, 0, in.InsuranceRate, true)

	return utils.Round2(differentiatedPayments + tax + insurance +
		in.RenovationCost + in.FirstPayment() - finalRealEstatePrice)
}

// TotalRentCost рассчитывает итоговые расходы арендатора
func TotalRentCost(in ComparisonInput) float64 {
	return utils.Round2(RentForWholePeriod(in))
}
