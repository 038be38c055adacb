package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tuinmax/verandaplanner/pkg/config"
	"github.com/tuinmax/verandaplanner/pkg/interpret"
	"github.com/tuinmax/verandaplanner/pkg/pricing"
	"github.com/tuinmax/verandaplanner/pkg/scene"
	"github.com/tuinmax/verandaplanner/pkg/validation"
)

// loadAndValidate loads the project configuration and validates it.
func loadAndValidate(projectPath string) (*config.Configuration, *validation.Report, error) {
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return cfg, config.Validate(cfg), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runResolve(projectPath string) error {
	cfg, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("configuration has validation errors")
	}

	states := scene.Resolve(*cfg, scene.CatalogTree().Index())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(states)
}

func runPrice(projectPath string) error {
	cfg, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("configuration has validation errors; fix before pricing")
	}

	quote := pricing.Price(config.Sanitize(*cfg))
	printQuote(quote)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runInterpret(text string) error {
	res := interpret.Interpret(text, nil)

	output := map[string]any{
		"config":  res.Config,
		"changes": res.Changes,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
