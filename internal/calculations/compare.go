package calculations

import (
	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

// Balance рассчитывает итоговый баланс сценария: доходы минус расходы
func Balance(totalLosses, totalGains float64) float64 {
	return utils.Round2(totalGains - totalLosses)
}

// Evaluate сравнивает аренду и покупку для одного набора параметров.
// Функция чистая: одинаковый вход всегда дает одинаковый результат.
func Evaluate(in ComparisonInput) ComparisonResult {
	payment := AnnuityPayment(in)
	finalRealEstatePrice := FinalRealEstatePrice(in)

	totalRentCosts := TotalRentCost(in)
	totalRentGains := TotalGainsForRenting(in, payment)
	totalAnnuityCosts := TotalLossesAnnuity(in, finalRealEstatePrice)
	totalDifferentiatedCosts := TotalLossesDifferentiated(in, finalRealEstatePrice)
	totalBuyGains := TotalGainsForBuying(in, payment)

	// В итоговый баланс покупки попадает выбранная схема погашения
	buyBalance := Balance(totalAnnuityCosts, totalBuyGains)
	if in.IsDifferentiatedPayment {
		buyBalance = Balance(totalDifferentiatedCosts, totalBuyGains)
	}
	rentBalance := Balance(totalRentCosts, totalRentGains)

	return ComparisonResult{
		SumOfAnnuityPayments:        TotalAnnuityPayments(in, payment),
		SumOfDifferentiatedPayments: DifferentiatedTotal(in),
		TotalAnnuityCosts:           totalAnnuityCosts,
		TotalDifferentiatedCosts:    totalDifferentiatedCosts,
		PayedForRent:                RentForWholePeriod(in),
		TotalRentCosts:              totalRentCosts,
		TotalRentGains:              totalRentGains,
		TotalBuyGains:               totalBuyGains,
		FinalRealEstatePrice:        finalRealEstatePrice,
		RentBalance:                 rentBalance,
		BuyBalance:                  buyBalance,
		MonthlyPayment:              payment,
		Verdict:                     verdict(buyBalance, rentBalance),
	}
}

func verdict(buyBalance, rentBalance float64) Verdict {
	switch {
	case buyBalance > rentBalance:
		return VerdictBuy
	case buyBalance < rentBalance:
		return VerdictRent
	default:
		return VerdictEqual
	}
}
