package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evseev/kopilka/internal/cli"
	"github.com/evseev/kopilka/internal/limits"
)

func limitsCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show month-to-date spend against per-category limits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			report, err := limits.NewService(store, nil).MonthReport(ctx, userID, time.Now())
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Лимиты на %02d.%d", report.Month, report.Year)))
			for _, status := range report.Categories {
				line := fmt.Sprintf("%-20s %8.0f / %8.0f ₽  (%3.0f%%)",
					status.CategoryCode, status.Spent, status.Limit, status.Percent)
				switch {
				case status.Remaining < 0:
					fmt.Println(cli.ErrorStyle.Render(line))
				case status.Percent >= 80:
					fmt.Println(cli.WarningStyle.Render(line))
				default:
					fmt.Println(line)
				}
			}
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Итого: %.0f / %.0f ₽", report.TotalSpent, report.TotalLimit)))

			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "Telegram user ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func historyCmd() *cobra.Command {
	var userID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent recorded expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.GetLastExpenses(ctx, userID, limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("История пуста"))
				return nil
			}

			for _, expense := range expenses {
				fmt.Printf("%s  %-30s %8.0f ₽  %s\n",
					cli.SubtleStyle.Render(expense.CreatedAt.Format("02.01 15:04")),
					expense.Description,
					expense.Amount,
					cli.SubtleStyle.Render(expense.CategoryCode))
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "Telegram user ID")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of entries to show")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.SuccessStyle.Render("Database schema is up to date"))
			return nil
		},
	}
}
