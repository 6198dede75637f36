package validators

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/cloud-ru/rent-vs-buy-go/pkg/utils"
	"github.com/go-playground/validator/v10"
)

// requiredMessages сообщения об отсутствующих полях запроса
var requiredMessages = map[string]string{
	"fullPrice":               "Full price should not be empty",
	"loanBody":                "Loan body should not be empty",
	"yearsOfLoan":             "Years of loan  should not be empty",
	"creditInterestRate":      "Credit interest rate should not be empty",
	"monthlyRent":             "Monthly rent should not be empty",
	"rentInflationRate":       "Rent inflation rate should not be empty",
	"renovationCost":          "Renovation cost should not be empty",
	"debitInterestRate":       "Debit interest rate should not be empty",
	"taxRate":                 "Tax rate should not be empty",
	"insuranceRate":           "Insurance rate should not be empty",
	"isDifferentiatedPayment": "Should provide information about payment type",
}

// ValidationError содержит ошибки по полям запроса
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator проверяет запросы с лимитами из конфигурации.
// Реализует echo.Validator.
type Validator struct {
	v   *validator.Validate
	cfg *config.Config
}

// New создает валидатор и регистрирует пользовательские теги
func New(cfg *config.Config) *Validator {
	v := validator.New()

	// Ошибки адресуются по имени поля в JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Срок задается числом, но должен быть целым
	_ = v.RegisterValidation("intlike", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-math.Round(f)) < 1e-9
	})
	_ = v.RegisterValidation("amount_cap", func(fl validator.FieldLevel) bool {
		return CheckAmount(cfg, fl.Field().Float()) == nil
	})
	_ = v.RegisterValidation("rate_cap", func(fl validator.FieldLevel) bool {
		return CheckRate(cfg, fl.Field().Float()) == nil
	})
	_ = v.RegisterValidation("years_cap", func(fl validator.FieldLevel) bool {
		return CheckYears(cfg, int(math.Round(fl.Field().Float()))) == nil
	})

	return &Validator{v: v, cfg: cfg}
}

// Validate проверяет структуру и возвращает *ValidationError при ошибках
func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Fields: cv.FieldErrors(ve)}
}

// FieldErrors переводит ошибки validator в сообщения по полям.
// На каждое поле приходится одно сообщение: первое нарушенное правило.
func (cv *Validator) FieldErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		switch e.Tag() {
		case "required":
			msg, ok := requiredMessages[field]
			if !ok {
				msg = "is required"
			}
			out[field] = msg
		case "intlike":
			out[field] = "must be an integer value"
		case "gte":
			out[field] = "must be greater than or equal to " + e.Param()
		case "lte":
			out[field] = "must be less than or equal to " + e.Param()
		case "amount_cap":
			out[field] = "must be less than or equal to " + formatLimit(cv.cfg.MaxAmount)
		case "rate_cap":
			out[field] = "must be less than or equal to " + formatLimit(cv.cfg.MaxRate)
		case "years_cap":
			out[field] = "must be less than or equal to " + strconv.Itoa(cv.cfg.MaxYears)
		case "oneof":
			out[field] = "must be one of: " + e.Param()
		default:
			out[field] = e.Tag() + " validation failed"
		}
	}
	return out
}

func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidateNumber проверяет, что число конечно и не превышает верхнюю границу
func ValidateNumber(name string, value float64, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%s)", name, formatLimit(maxInclusive))
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckAmount проверяет денежную сумму
func CheckAmount(cfg *config.Config, amount float64) error {
	return ValidateNumber("amount", amount, cfg.MaxAmount)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumber("rate", rate, cfg.MaxRate)
}

// CheckYears проверяет срок в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("years", years, 0, cfg.MaxYears)
}
