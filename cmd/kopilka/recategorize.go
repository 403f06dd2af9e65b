package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/evseev/kopilka/internal/cli"
)

func recategorizeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "recategorize",
		Short: "Re-run the classifier over all stored expenses",
		Long: `Re-classifies every stored expense with the current rule table, anchors
and threshold, and updates categories that changed. Run after tuning rules or
anchors to bring historical data in line.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			c, err := buildClassifier(ctx)
			if err != nil {
				return err
			}

			expenses, err := store.GetAllExpenses(ctx)
			if err != nil {
				return fmt.Errorf("failed to load expenses: %w", err)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to recategorize"))
				return nil
			}

			bar := progressbar.Default(int64(len(expenses)), "reclassifying")

			var changed int
			for _, expense := range expenses {
				result, classifyErr := c.Classify(ctx, expense.Description)
				if classifyErr != nil {
					return fmt.Errorf("failed to classify expense %d: %w", expense.ID, classifyErr)
				}

				newCode := result.Category.Code()
				if newCode != expense.CategoryCode {
					changed++
					fmt.Printf("\n%s %q: %s -> %s\n",
						cli.SubtleStyle.Render("reclassified"),
						expense.Description,
						expense.CategoryCode,
						newCode)

					if !dryRun {
						if updateErr := store.UpdateExpenseCategory(ctx, expense.ID, newCode); updateErr != nil {
							return fmt.Errorf("failed to update expense %d: %w", expense.ID, updateErr)
						}
					}
				}

				_ = bar.Add(1)
			}
			_ = bar.Finish()

			summary := fmt.Sprintf("Done: %d of %d expenses changed category", changed, len(expenses))
			if dryRun {
				summary += " (dry run, nothing written)"
			}
			fmt.Println(cli.SuccessStyle.Render(summary))

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing them")

	return cmd
}
