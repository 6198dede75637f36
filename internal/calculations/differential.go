package calculations

import (
	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

// principalShare возвращает фиксированную часть основного долга в каждом платеже
func principalShare(in ComparisonInput) float64 {
	n := in.PeriodInMonths()
	if n == 0 {
		return 0.0
	}
	return in.LoanBody / float64(n)
}

// DifferentiatedMonthlyPayment рассчитывает дифференцированный платеж для текущего остатка.
// Доля основного долга всегда считается от исходной суммы кредита.
func DifferentiatedMonthlyPayment(in ComparisonInput, loanLeft float64) float64 {
	r := MonthlyRate(in.CreditInterestRate)
	return utils.Round2(principalShare(in) + loanLeft*r)
}

// DifferentiatedTotal рассчитывает сумму всех дифференцированных платежей
func DifferentiatedTotal(in ComparisonInput) float64 {
	if in.FullyPaid() {
		return 0.0
	}

	loanLeft := in.LoanBody
	share := principalShare(in)
	total := 0.0

	for m := in.PeriodInMonths(); m >= 1; m-- {
		payment := DifferentiatedMonthlyPayment(in, loanLeft)
		loanLeft = loanLeft - share
		total += payment
	}

	return utils.Round2(total)
}

// DifferentialSchedule рассчитывает график дифференцированного кредита
func DifferentialSchedule(in ComparisonInput) ScheduleResult {
	if in.FullyPaid() {
		return emptySchedule(in)
	}

	schedule := roundSchedule(LoanSchedule(in, 0, true))
	totalPaid := DifferentiatedTotal(in)

	var firstPayment, lastPayment float64
	if len(schedule) > 0 {
		firstPayment = schedule[0].Payment
		lastPayment = schedule[len(schedule)-1].Payment
	}

	summary := LoanSummary{
		Principal:         utils.Round2(in.LoanBody),
		AnnualRatePercent: utils.Round2(in.CreditInterestRate),
		Months:            in.PeriodInMonths(),
		FirstMonthPayment: firstPayment,
		LastMonthPayment:  lastPayment,
		TotalPaid:         totalPaid,
		TotalInterest:     utils.Round2(totalPaid - in.LoanBody),
	}

	return ScheduleResult{
		Summary:  summary,
		Schedule: schedule,
	}
}
