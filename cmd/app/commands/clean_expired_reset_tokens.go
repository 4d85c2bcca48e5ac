package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/allisson/crewhub/internal/app"
	"github.com/allisson/crewhub/internal/config"
)

// RunCleanExpiredResetTokens deletes reset tokens that expired more than the
// given number of days ago. Supports dry-run mode to preview the deletion
// count and both text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredResetTokens(ctx context.Context, days int, dryRun bool, format string) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	cfg := config.Load()

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("cleaning expired reset tokens",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	defer closeContainer(container, logger)

	resetUseCase, err := container.PasswordResetUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize password reset use case: %w", err)
	}

	count, err := resetUseCase.CleanupExpired(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to cleanup expired reset tokens: %w", err)
	}

	if format == "json" {
		outputCleanExpiredJSON(count, days, dryRun)
	} else {
		outputCleanExpiredText(count, days, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(count int64, days int, dryRun bool) {
	if dryRun {
		fmt.Printf("Dry-run mode: Would delete %d expired reset token(s) older than %d day(s)\n", count, days)
	} else {
		fmt.Printf("Successfully deleted %d expired reset token(s) older than %d day(s)\n", count, days)
	}
}

// outputCleanExpiredJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredJSON(count int64, days int, dryRun bool) {
	result := map[string]interface{}{
		"count":   count,
		"days":    days,
		"dry_run": dryRun,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Println(string(jsonBytes))
}
