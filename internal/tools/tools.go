package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cloud-ru/rent-vs-buy-go/internal/calculations"
	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/cloud-ru/rent-vs-buy-go/internal/metrics"
	"github.com/cloud-ru/rent-vs-buy-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	CompareRentAndBuyTool = "compare_rent_and_buy"
	LoanScheduleTool      = "loan_schedule"

	ScheduleAnnuity        = "annuity"
	ScheduleDifferentiated = "differentiated"
)

var (
	// ErrInvalidParams параметры не удалось разобрать
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrUnknownTool инструмент с таким именем не зарегистрирован
	ErrUnknownTool = errors.New("unknown tool")
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ComparisonRequest описывает входные параметры сравнения.
// Указатели отличают отсутствующее поле от нулевого значения.
type ComparisonRequest struct {
	FullPrice               *float64 `json:"fullPrice" validate:"required,gte=0,amount_cap"`
	LoanBody                *float64 `json:"loanBody" validate:"required,gte=0,amount_cap"`
	YearsOfLoan             *float64 `json:"yearsOfLoan" validate:"required,gte=0,intlike,years_cap"`
	CreditInterestRate      *float64 `json:"creditInterestRate" validate:"required,gte=0,rate_cap"`
	MonthlyRent             *float64 `json:"monthlyRent" validate:"required,gte=0,amount_cap"`
	RentInflationRate       *float64 `json:"rentInflationRate" validate:"required,rate_cap"`
	RenovationCost          *float64 `json:"renovationCost" validate:"required,gte=0,amount_cap"`
	DebitInterestRate       *float64 `json:"debitInterestRate" validate:"required,rate_cap"`
	TaxRate                 *float64 `json:"taxRate" validate:"required,gte=0,rate_cap"`
	InsuranceRate           *float64 `json:"insuranceRate" validate:"required,gte=0,rate_cap"`
	IsDifferentiatedPayment *bool    `json:"isDifferentiatedPayment" validate:"required"`
}

// ToInput переводит проверенный запрос во входные данные расчета.
// Вызывать только после успешной валидации.
func (r ComparisonRequest) ToInput() calculations.ComparisonInput {
	return calculations.ComparisonInput{
		FullPrice:               *r.FullPrice,
		LoanBody:                *r.LoanBody,
		YearsOfLoan:             int(math.Round(*r.YearsOfLoan)),
		CreditInterestRate:      *r.CreditInterestRate,
		MonthlyRent:             *r.MonthlyRent,
		RentInflationRate:       *r.RentInflationRate,
		RenovationCost:          *r.RenovationCost,
		DebitInterestRate:       *r.DebitInterestRate,
		TaxRate:                 *r.TaxRate,
		InsuranceRate:           *r.InsuranceRate,
		IsDifferentiatedPayment: *r.IsDifferentiatedPayment,
	}
}

// decodeRequest разбирает параметры инструмента в запрос и проверяет его
func decodeRequest(v *validators.Validator, params map[string]interface{}) (ComparisonRequest, error) {
	var req ComparisonRequest

	raw, err := json.Marshal(params)
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := v.Validate(req); err != nil {
		return req, err
	}
	return req, nil
}

func inputAttributes(in calculations.ComparisonInput) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("full_price", in.FullPrice),
		attribute.Float64("loan_body", in.LoanBody),
		attribute.Int("years_of_loan", in.YearsOfLoan),
		attribute.Float64("credit_interest_rate", in.CreditInterestRate),
		attribute.Float64("monthly_rent", in.MonthlyRent),
		attribute.Float64("debit_interest_rate", in.DebitInterestRate),
		attribute.Bool("is_differentiated_payment", in.IsDifferentiatedPayment),
	}
}

// recordFailure отмечает ошибку в спане и метриках
func recordFailure(span trace.Span, toolName string, err error) {
	status, errType := "error", "params"
	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		status, errType = "validation_error", "validation"
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, errType)
	span.SetAttributes(attribute.String("error", errType))
	metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errType).Inc()
}

// CompareRentAndBuyHandler обрабатывает запрос на сравнение аренды и покупки
func CompareRentAndBuyHandler(tracer trace.Tracer, v *validators.Validator) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := CompareRentAndBuyTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		req, err := decodeRequest(v, params)
		if err != nil {
			recordFailure(span, toolName, err)
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		in := req.ToInput()
		span.SetAttributes(inputAttributes(in)...)

		result := calculations.Evaluate(in)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("rent_balance", result.RentBalance),
			attribute.Float64("buy_balance", result.BuyBalance),
			attribute.String("verdict", string(result.Verdict)),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.Verdicts.WithLabelValues(string(result.Verdict)).Inc()

		return result, nil
	}
}

// LoanScheduleHandler обрабатывает запрос на построение графика платежей.
// Тип графика берется из параметра type, а без него из isDifferentiatedPayment.
func LoanScheduleHandler(tracer trace.Tracer, v *validators.Validator) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := LoanScheduleTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		scheduleType, err := scheduleTypeParam(params)
		if err != nil {
			recordFailure(span, toolName, err)
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		req, err := decodeRequest(v, params)
		if err != nil {
			recordFailure(span, toolName, err)
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		in := req.ToInput()
		if scheduleType == "" {
			scheduleType = ScheduleAnnuity
			if in.IsDifferentiatedPayment {
				scheduleType = ScheduleDifferentiated
			}
		}

		span.SetAttributes(inputAttributes(in)...)
		span.SetAttributes(attribute.String("schedule_type", scheduleType))

		var result calculations.ScheduleResult
		if scheduleType == ScheduleDifferentiated {
			result = calculations.DifferentialSchedule(in)
		} else {
			result = calculations.AnnuitySchedule(in)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("months", result.Summary.Months),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return result, nil
	}
}

func scheduleTypeParam(params map[string]interface{}) (string, error) {
	raw, ok := params["type"]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if ok {
		switch s {
		case "":
			return "", nil
		case ScheduleAnnuity, ScheduleDifferentiated:
			return s, nil
		}
	}
	return "", &validators.ValidationError{Fields: map[string]string{
		"type": "must be one of: " + ScheduleAnnuity + " " + ScheduleDifferentiated,
	}}
}

// Registry хранит обработчики инструментов по имени
type Registry struct {
	handlers map[string]ToolHandler
}

// NewRegistry регистрирует все инструменты сервиса
func NewRegistry(cfg *config.Config, tracer trace.Tracer) *Registry {
	v := validators.New(cfg)
	return &Registry{handlers: map[string]ToolHandler{
		CompareRentAndBuyTool: CompareRentAndBuyHandler(tracer, v),
		LoanScheduleTool:      LoanScheduleHandler(tracer, v),
	}}
}

// Call вызывает инструмент по имени
func (r *Registry) Call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return handler(ctx, params)
}

// Names возвращает имена зарегистрированных инструментов
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
