package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evseev/kopilka/internal/cli"
	"github.com/evseev/kopilka/internal/model"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify an expense description without recording it",
		Long: `Runs the categorization engine on a single description and prints the
resulting category code. Useful for back-testing rules and anchors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.Join(args, " ")

			c, err := buildClassifier(ctx)
			if err != nil {
				return err
			}

			result, err := c.Classify(ctx, text)
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			style := cli.SuccessStyle
			if result.Category.IsUnknown() {
				style = cli.WarningStyle
			}

			fmt.Println(cli.BoldStyle.Render(text))
			fmt.Printf("%s %s\n", cli.SubtleStyle.Render("category:"), style.Render(result.Category.Code()))
			if result.Status != model.StatusClassifiedByRule {
				fmt.Printf("%s %.3f\n", cli.SubtleStyle.Render("confidence:"), result.Confidence)
			}
			fmt.Printf("%s %s\n", cli.SubtleStyle.Render("status:"), string(result.Status))

			return nil
		},
	}
}
