package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/smartspend-backend/internal/setup/factory"
	"github.com/spf13/cobra"
)

func newRecalculateCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Recompute the spent value of every budget of an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner = strings.TrimSpace(owner)
			if owner == "" {
				return fmt.Errorf("--owner must not be empty")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, _, db, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer helpers.DisconnectMongo(db)

			aggregator := factory.MakeSpendAggregator(db, cfg.Location(), cfg.RecalcConcurrency)
			return runRecalculate(ctx, cmd.OutOrStdout(), aggregator, owner)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner id whose budgets are recomputed (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runRecalculate(ctx context.Context, out io.Writer, recompute usecase.RecomputeBudgetsSpentUseCase, owner string) error {
	budgets, err := recompute.Recompute(ctx, owner)
	if err != nil {
		return fmt.Errorf("recomputing budgets of %s: %w", owner, err)
	}

	if len(budgets) == 0 {
		fmt.Fprintf(out, "No budgets for %s\n", owner)
		return nil
	}

	for _, budget := range budgets {
		fmt.Fprintln(out, formatBudgetLine(budget))
	}
	return nil
}

func formatBudgetLine(budget models.Budget) string {
	usage := 0.0
	if budget.Amount > 0 {
		usage = budget.Spent / budget.Amount * 100
	}
	return fmt.Sprintf("%-20s %-10s %10.2f / %10.2f (%.0f%%)", budget.Category, budget.Period, budget.Spent, budget.Amount, usage)
}
