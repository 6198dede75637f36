package calculations

import (
	"math"

	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

const (
	// maxDeductibleSum - предельная сумма имущественного вычета
	maxDeductibleSum = 2000000
	// deductionPercent - ставка НДФЛ, возвращаемая вычетом
	deductionPercent = 13
	// appreciationRate - ежегодный рост цены недвижимости
	appreciationRate = 1.00 / 100
)

// TaxDeduction рассчитывает имущественный налоговый вычет
func TaxDeduction(fullPrice float64) float64 {
	if fullPrice > maxDeductibleSum {
		return float64(maxDeductibleSum*deductionPercent) / 100
	}
	return fullPrice * deductionPercent / 100
}

// FinalRealEstatePrice рассчитывает цену квартиры в конце срока
func FinalRealEstatePrice(in ComparisonInput) float64 {
	return utils.Round2(in.FullPrice * math.Pow(1+appreciationRate, float64(in.YearsOfLoan)))
}

// TotalGainsForRenting рассчитывает доход арендатора.
// Если платеж по кредиту выше аренды, арендатор вкладывает и разницу.
func TotalGainsForRenting(in ComparisonInput, annuityPayment float64) float64 {
	if annuityPayment > in.MonthlyRent {
		return utils.Round2(CompoundingWithoutFirstPayment(in, annuityPayment) +
			CompoundingWithoutPayments(in))
	}
	return utils.Round2(CompoundingWithoutPayments(in))
}

// TotalGainsForBuying рассчитывает доход покупателя.
// Если платеж ниже аренды или кредита нет, покупатель вкладывает сэкономленное.
func TotalGainsForBuying(in ComparisonInput, annuityPayment float64) float64 {
	if in.FullyPaid() || annuityPayment < in.MonthlyRent {
		return utils.Round2(TaxDeduction(in.FullPrice) +
			CompoundingWithoutFirstPayment(in, annuityPayment) +
			FinalRealEstatePrice(in))
	}
	return utils.Round2(TaxDeduction(in.FullPrice) + FinalRealEstatePrice(in))
}
