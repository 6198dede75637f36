package calculations

// ComparisonInput содержит параметры сравнения аренды и покупки.
// Значение неизменяемое: все функции пакета принимают его по значению.
type ComparisonInput struct {
	FullPrice               float64 `json:"fullPrice"`
	LoanBody                float64 `json:"loanBody"`
	YearsOfLoan             int     `json:"yearsOfLoan"`
	CreditInterestRate      float64 `json:"creditInterestRate"`
	MonthlyRent             float64 `json:"monthlyRent"`
	RentInflationRate       float64 `json:"rentInflationRate"`
	RenovationCost          float64 `json:"renovationCost"`
	DebitInterestRate       float64 `json:"debitInterestRate"`
	TaxRate                 float64 `json:"taxRate"`
	InsuranceRate           float64 `json:"insuranceRate"`
	IsDifferentiatedPayment bool    `json:"isDifferentiatedPayment"`
}

// FirstPayment возвращает первоначальный взнос
func (in ComparisonInput) FirstPayment() float64 {
	return in.FullPrice - in.LoanBody
}

// PeriodInMonths возвращает горизонт расчета в месяцах
func (in ComparisonInput) PeriodInMonths() int {
	return in.YearsOfLoan * 12
}

// FullyPaid сообщает, что квартира куплена без кредита
func (in ComparisonInput) FullyPaid() bool {
	return in.FullPrice-in.FirstPayment() <= 0
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month              int     `json:"month"`
	StartingBalance    float64 `json:"starting_balance"`
	Payment            float64 `json:"payment"`
	Interest           float64 `json:"interest"`
	PrincipalComponent float64 `json:"principal_component"`
	RemainingPrincipal float64 `json:"remaining_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            int     `json:"months"`
	MonthlyPayment    float64 `json:"monthly_payment,omitempty"`
	FirstMonthPayment float64 `json:"first_month_payment,omitempty"`
	LastMonthPayment  float64 `json:"last_month_payment,omitempty"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// ScheduleResult представляет график платежей вместе со сводкой
type ScheduleResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// Verdict показывает, какой сценарий выгоднее
type Verdict string

const (
	VerdictBuy   Verdict = "buy"
	VerdictRent  Verdict = "rent"
	VerdictEqual Verdict = "equal"
)

// ComparisonResult представляет итог сравнения аренды и покупки
type ComparisonResult struct {
	SumOfAnnuityPayments        float64 `json:"sumOfAnnuityPayments"`
	SumOfDifferentiatedPayments float64 `json:"sumOfDifferentiatedPayments"`
	TotalAnnuityCosts           float64 `json:"totalAnnuityCosts"`
	TotalDifferentiatedCosts    float64 `json:"totalDifferentiatedCosts"`
	PayedForRent                float64 `json:"payedForRent"`
	TotalRentCosts              float64 `json:"totalRentCosts"`
	TotalRentGains              float64 `json:"totalRentGains"`
	TotalBuyGains               float64 `json:"totalBuyGains"`
	FinalRealEstatePrice        float64 `json:"finalRealEstatePrice"`
	RentBalance                 float64 `json:"rentBalance"`
	BuyBalance                  float64 `json:"buyBalance"`

	MonthlyPayment float64 `json:"monthlyPayment"`
	Verdict        Verdict `json:"verdict"`
}
