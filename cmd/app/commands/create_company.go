package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/allisson/crewhub/internal/app"
	companyDomain "github.com/allisson/crewhub/internal/company/domain"
	"github.com/allisson/crewhub/internal/config"
)

// RunCreateCompany registers a new company from the command line.
// Supports text and JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCreateCompany(ctx context.Context, name, email, document, format string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}

	cfg := config.Load()

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("creating company", slog.String("name", name))

	defer closeContainer(container, logger)

	companyUseCase, err := container.CompanyUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize company use case: %w", err)
	}

	company, err := companyUseCase.Create(ctx, &companyDomain.CreateCompanyInput{
		Name:     name,
		Email:    email,
		Document: document,
	})
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	if format == "json" {
		outputCreateCompanyJSON(company)
	} else {
		outputCreateCompanyText(company)
	}

	logger.Info("company created", slog.String("company_id", company.ID.String()))
	return nil
}

// outputCreateCompanyText outputs the result in human-readable text format.
func outputCreateCompanyText(company *companyDomain.Company) {
	fmt.Printf("Company created\n")
	fmt.Printf("  ID:    %s\n", company.ID)
	fmt.Printf("  Name:  %s\n", company.Name)
	fmt.Printf("  Email: %s\n", company.Email)
}

// outputCreateCompanyJSON outputs the result in JSON format for machine consumption.
func outputCreateCompanyJSON(company *companyDomain.Company) {
	result := map[string]interface{}{
		"id":    company.ID.String(),
		"name":  company.Name,
		"email": company.Email,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Println(string(jsonBytes))
}
