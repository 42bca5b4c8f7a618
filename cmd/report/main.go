// Command report prints every employee's vacation balance as of a date.
//
//	report -date=2026-02-15
//	report -store=redis -redis=localhost:6379
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/config"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, vacation.RealClock{}); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, clock vacation.Clock) error {
	cfg, err := config.Load("report", args, stderr)
	if err != nil {
		return err
	}

	asOf := vacation.Today(clock)
	if cfg.Date != "" {
		if asOf, err = vacation.ParseDate(cfg.Date); err != nil {
			return err
		}
	}

	st, closer, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Seed {
		if _, err := vacation.Seed(ctx, st, asOf.Year()); err != nil {
			return err
		}
	}

	employees, err := st.ListEmployees(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Vacation balances as of %s\n\n", asOf)
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBIRTHDAY\tACCRUED\tUSED\tBONUS\tBALANCE")
	for _, emp := range employees {
		s := vacation.ComputeStats(emp, asOf)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			emp.ID, emp.Name, emp.Birthday.Month, s.RegularAccrued, s.RegularUsed,
			bonusLabel(s), vacation.FormatBalance(s.TotalBalance))
	}
	return tw.Flush()
}

func bonusLabel(s vacation.Stats) string {
	switch {
	case s.BonusUsed:
		return "used"
	case s.BonusAvailable > 0:
		return "available"
	default:
		return "-"
	}
}
