package main

import (
	"fmt"

	"github.com/tuinmax/verandaplanner/pkg/pricing"
	"github.com/tuinmax/verandaplanner/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printQuote(q pricing.Quote) {
	fmt.Println("Price Quote")
	fmt.Println("===========")
	fmt.Println()
	fmt.Printf("%-14s %12s %12s\n", "Component", "Wholesale", "Retail")
	fmt.Printf("%-14s %12s %12s\n", "--------------", "------------", "------------")

	printComponent("Roof", q.Roof)
	if q.Enclosures.Left != nil {
		printComponent("Left wall", *q.Enclosures.Left)
	}
	if q.Enclosures.Right != nil {
		printComponent("Right wall", *q.Enclosures.Right)
	}
	if q.Lighting != nil {
		printComponent("Lighting", *q.Lighting)
	}

	fmt.Println()
	fmt.Printf("%-14s %12s %12s\n", "TOTAL", formatMoney(q.Total.Wholesale), formatMoney(q.Total.Retail))
}

func printComponent(label string, c pricing.Component) {
	if c.Err != "" {
		fmt.Printf("%-14s %25s\n", label, "("+c.Err+")")
		return
	}
	fmt.Printf("%-14s %12s %12s\n", label, formatMoney(c.Wholesale), formatMoney(c.Retail))
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
