package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/cloud-ru/rent-vs-buy-go/internal/tools"
	"github.com/cloud-ru/rent-vs-buy-go/internal/validators"
	"github.com/urfave/cli"
	"go.opentelemetry.io/otel"
)

var (
	fullPriceFlag      = cli.Float64Flag{Name: "full_price", Value: 6000000, Usage: "full price of the apartment"}
	loanBodyFlag       = cli.Float64Flag{Name: "loan_body", Value: 5400000, Usage: "amount borrowed from the bank"}
	yearsFlag          = cli.Float64Flag{Name: "years", Value: 25, Usage: "loan term and comparison horizon, in years"}
	creditRateFlag     = cli.Float64Flag{Name: "credit_rate", Value: 6.49, Usage: "yearly loan interest rate, in percent"}
	monthlyRentFlag    = cli.Float64Flag{Name: "monthly_rent", Value: 25000, Usage: "rent paid in the first year, per month"}
	rentInflationFlag  = cli.Float64Flag{Name: "rent_inflation", Value: 4, Usage: "yearly rent increase, in percent"}
	renovationFlag     = cli.Float64Flag{Name: "renovation", Value: 1500000, Usage: "renovation cost paid upfront"}
	debitRateFlag      = cli.Float64Flag{Name: "debit_rate", Value: 8, Usage: "yearly deposit interest rate, in percent"}
	taxRateFlag        = cli.Float64Flag{Name: "tax_rate", Value: 0.1, Usage: "yearly property tax, in percent of the price"}
	insuranceRateFlag  = cli.Float64Flag{Name: "insurance_rate", Value: 0.5, Usage: "yearly insurance, in percent of the loan left"}
	differentiatedFlag = cli.BoolFlag{Name: "differentiated", Usage: "repay the loan with differentiated payments"}
	scheduleFlag       = cli.StringFlag{Name: "schedule", Usage: "print the loan schedule (annuity or differentiated) instead of the comparison"}
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rentvsbuy"
	app.Usage = "compare renting an apartment with buying it on a mortgage"
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		fullPriceFlag,
		loanBodyFlag,
		yearsFlag,
		creditRateFlag,
		monthlyRentFlag,
		rentInflationFlag,
		renovationFlag,
		debitRateFlag,
		taxRateFlag,
		insuranceRateFlag,
		differentiatedFlag,
		scheduleFlag,
	}
	app.Action = func(cctx *cli.Context) error {
		params := map[string]interface{}{
			"fullPrice":               cctx.Float64(fullPriceFlag.Name),
			"loanBody":                cctx.Float64(loanBodyFlag.Name),
			"yearsOfLoan":             cctx.Float64(yearsFlag.Name),
			"creditInterestRate":      cctx.Float64(creditRateFlag.Name),
			"monthlyRent":             cctx.Float64(monthlyRentFlag.Name),
			"rentInflationRate":       cctx.Float64(rentInflationFlag.Name),
			"renovationCost":          cctx.Float64(renovationFlag.Name),
			"debitInterestRate":       cctx.Float64(debitRateFlag.Name),
			"taxRate":                 cctx.Float64(taxRateFlag.Name),
			"insuranceRate":           cctx.Float64(insuranceRateFlag.Name),
			"isDifferentiatedPayment": cctx.Bool(differentiatedFlag.Name),
		}
		return run(app.Writer, app.ErrWriter, params, cctx.String(scheduleFlag.Name))
	}
	return app
}

func run(out, errOut io.Writer, params map[string]interface{}, schedule string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := tools.NewRegistry(cfg, otel.Tracer("rentvsbuy"))

	toolName := tools.CompareRentAndBuyTool
	if schedule != "" {
		toolName = tools.LoanScheduleTool
		params["type"] = schedule
	}

	result, err := registry.Call(context.Background(), toolName, params)
	if err != nil {
		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			printFieldErrors(errOut, ve.Fields)
		}
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printFieldErrors(w io.Writer, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s\n", name, fields[name])
	}
}
