package calculations

import (
	"math"

	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

// depositGrowth возвращает множитель капитализации вклада за весь срок
func depositGrowth(in ComparisonInput) float64 {
	return math.Pow(1+MonthlyRate(in.DebitInterestRate), float64(in.PeriodInMonths()))
}

// futureValueOfPayments рассчитывает будущую стоимость ежемесячных взносов (обычная рента).
// При нулевой ставке рост отсутствует и остается сумма взносов.
func futureValueOfPayments(in ComparisonInput, payment float64) float64 {
	if MonthlyRate(in.DebitInterestRate) == 0.0 {
		return payment * float64(in.PeriodInMonths())
	}
	return payment * (depositGrowth(in) - 1) * 12 / (in.DebitInterestRate / 100)
}

// futureValueOfLumpSum рассчитывает будущую стоимость первоначального взноса и бюджета на ремонт
func futureValueOfLumpSum(in ComparisonInput) float64 {
	return (in.FirstPayment() + in.RenovationCost) * depositGrowth(in)
}

// CompoundingWithoutPayments рассчитывает доход от вклада первоначального взноса и ремонта
func CompoundingWithoutPayments(in ComparisonInput) float64 {
	return utils.Round2(futureValueOfLumpSum(in))
}

// CompoundingWithAnnuityPayments рассчитывает доход от вклада с ежемесячным пополнением
// на сумму аннуитетного платежа
func CompoundingWithAnnuityPayments(in ComparisonInput, annuityPayment float64) float64 {
	return utils.Round2(futureValueOfPayments(in, annuityPayment) + futureValueOfLumpSum(in))
}

// replenishment возвращает сумму, которую ежемесячно откладывает более дешевая сторона
func replenishment(in ComparisonInput, annuityPayment float64) float64 {
	payment := in.MonthlyRent - annuityPayment
	if in.FullyPaid() {
		payment = in.MonthlyRent
	}
	if annuityPayment > in.MonthlyRent {
		payment = annuityPayment - in.MonthlyRent
	}
	return payment
}

// CompoundingWithoutFirstPayment рассчитывает доход от вложения только ежемесячной разницы
// между платежом и арендой
func CompoundingWithoutFirstPayment(in ComparisonInput, annuityPayment float64) float64 {
	return utils.Round2(futureValueOfPayments(in, replenishment(in, annuityPayment)))
}
