package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/cloud-ru/rent-vs-buy-go/internal/calculations"
	"github.com/cloud-ru/rent-vs-buy-go/internal/validators"
)

func TestRunDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)

	if err := app.Run([]string{"rentvsbuy"}); err != nil {
		t.Fatalf("Run() error = %v, stderr %s", err, errOut.String())
	}

	var got calculations.ComparisonResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out.String())
	}
	if got.MonthlyPayment != 36427.45 {
		t.Errorf("MonthlyPayment = %v, want 36427.45", got.MonthlyPayment)
	}
	if got.Verdict == "" {
		t.Error("expected a verdict")
	}
}

func TestRunScenarioFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)

	args := []string{
		"rentvsbuy",
		"--full_price", "4200000",
		"--loan_body", "1969000",
		"--years", "20",
		"--credit_rate", "8.49",
		"--monthly_rent", "22000",
		"--renovation", "500000",
		"--differentiated",
	}
	if err := app.Run(args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got calculations.ComparisonResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.RentBalance != 5593685.63 {
		t.Errorf("RentBalance = %v, want 5593685.63", got.RentBalance)
	}
	if got.BuyBalance != 6844514.85 {
		t.Errorf("BuyBalance = %v, want 6844514.85", got.BuyBalance)
	}
}

func TestRunSchedule(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)

	if err := app.Run([]string{"rentvsbuy", "--years", "1", "--schedule", "annuity"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got calculations.ScheduleResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Summary.Months != 12 || len(got.Schedule) != 12 {
		t.Errorf("months = %d, entries = %d, want 12", got.Summary.Months, len(got.Schedule))
	}
}

func TestRunValidationError(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)

	err := app.Run([]string{"rentvsbuy", "--years", "2.5", "--monthly_rent", "-1"})
	var ve *validators.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	stderr := errOut.String()
	if !strings.Contains(stderr, "yearsOfLoan: must be an integer value") {
		t.Errorf("stderr is missing the years error: %s", stderr)
	}
	if !strings.Contains(stderr, "monthlyRent: must be greater than or equal to 0") {
		t.Errorf("stderr is missing the rent error: %s", stderr)
	}
	if out.Len() != 0 {
		t.Errorf("expected no result output, got %s", out.String())
	}
}
