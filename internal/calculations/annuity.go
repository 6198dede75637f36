package calculations

import (
	"math"

	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
)

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// AnnuityPayment рассчитывает ежемесячный аннуитетный платеж.
// Если кредита нет, возвращается месячная аренда: дальше она служит базой
// для сравнения денежных потоков, а не реальным платежом.
func AnnuityPayment(in ComparisonInput) float64 {
	if in.FullyPaid() {
		return in.MonthlyRent
	}

	n := in.PeriodInMonths()
	if n == 0 {
		return 0.0
	}

	r := MonthlyRate(in.CreditInterestRate)
	if r == 0.0 {
		return utils.Round2(in.LoanBody / float64(n))
	}

	growth := math.Pow(1+r, float64(n))
	return utils.Round2(in.LoanBody * (r * growth) / (growth - 1))
}

// AbsoluteMonthlyPercent возвращает процентную часть платежа для текущего остатка
func AbsoluteMonthlyPercent(in ComparisonInput, loanLeft, monthlyRate float64) float64 {
	if in.FullyPaid() {
		return 0.0
	}
	return loanLeft * monthlyRate
}

// LoanBodyPaidPerMonth возвращает часть платежа, которая гасит основной долг
func LoanBodyPaidPerMonth(in ComparisonInput, monthlyPayment, absoluteMonthlyPercent float64) float64 {
	if in.FullyPaid() {
		return 0.0
	}
	return monthlyPayment - absoluteMonthlyPercent
}

// LoanSchedule строит помесячную траекторию остатка долга.
// Значения не округляются: по ним считается страховка, и ошибка округления
// не должна накапливаться в остатке.
func LoanSchedule(in ComparisonInput, monthlyPayment float64, differentiated bool) []ScheduleEntry {
	if in.FullyPaid() {
		return nil
	}

	n := in.PeriodInMonths()
	r := MonthlyRate(in.CreditInterestRate)
	loanLeft := in.LoanBody
	schedule := make([]ScheduleEntry, 0, n)

	for m := 1; m <= n; m++ {
		payment := monthlyPayment
		if differentiated {
			payment = DifferentiatedMonthlyPayment(in, loanLeft)
		}

		interest := AbsoluteMonthlyPercent(in, loanLeft, r)
		principalComponent := LoanBodyPaidPerMonth(in, payment, interest)
		starting := loanLeft
		loanLeft = loanLeft - principalComponent

		schedule = append(schedule, ScheduleEntry{
			Month:              m,
			StartingBalance:    starting,
			Payment:            payment,
			Interest:           interest,
			PrincipalComponent: principalComponent,
			RemainingPrincipal: loanLeft,
		})
	}

	return schedule
}

// AnnuitySchedule рассчитывает график аннуитетного кредита
func AnnuitySchedule(in ComparisonInput) ScheduleResult {
	if in.FullyPaid() {
		return emptySchedule(in)
	}

	payment := AnnuityPayment(in)
	totalPaid := TotalAnnuityPayments(in, payment)
	schedule := roundSchedule(LoanSchedule(in, payment, false))

	summary := LoanSummary{
		Principal:         utils.Round2(in.LoanBody),
		AnnualRatePercent: utils.Round2(in.CreditInterestRate),
		Months:            in.PeriodInMonths(),
		MonthlyPayment:    payment,
		TotalPaid:         totalPaid,
		TotalInterest:     utils.Round2(totalPaid - in.LoanBody),
	}

	return ScheduleResult{
		Summary:  summary,
		Schedule: schedule,
	}
}

func emptySchedule(in ComparisonInput) ScheduleResult {
	return ScheduleResult{
		Summary: LoanSummary{
			AnnualRatePercent: utils.Round2(in.CreditInterestRate),
			Months:            in.PeriodInMonths(),
		},
		Schedule: []ScheduleEntry{},
	}
}

// roundSchedule округляет записи графика для отдачи наружу
func roundSchedule(schedule []ScheduleEntry) []ScheduleEntry {
	rounded := make([]ScheduleEntry, 0, len(schedule))
	for _, e := range schedule {
		rounded = append(rounded, ScheduleEntry{
			Month:              e.Month,
			StartingBalance:    utils.Round2(e.StartingBalance),
			Payment:            utils.Round2(e.Payment),
			Interest:           utils.Round2(e.Interest),
			PrincipalComponent: utils.Round2(e.PrincipalComponent),
			RemainingPrincipal: utils.Round2(e.RemainingPrincipal),
		})
	}
	return rounded
}
