package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evseev/kopilka/internal/bot"
	"github.com/evseev/kopilka/internal/limits"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Long: `Starts the Telegram bot with long polling. The embedding index is built
once at startup; a failing embedding backend aborts the start.`,
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

			limitsSvc := limits.NewService(store, nil)

			b, err := bot.New(viper.GetString("telegram.token"), c, store, limitsSvc)
			if err != nil {
				return fmt.Errorf("failed to create bot: %w", err)
			}

			return b.Run(ctx)
		},
	}

	cmd.Flags().String("token", "", "Telegram bot token")
	_ = viper.BindPFlag("telegram.token", cmd.Flags().Lookup("token"))

	return cmd
}
