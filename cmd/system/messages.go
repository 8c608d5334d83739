package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/internal/models"
	"github.com/rahulxs/folio_backend/pkg/database"
)

func NewMessagesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List recent contact form submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			db, err := database.New(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			store := models.NewContactStore(db)
			msgs, err := store.ListRecent(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			if len(msgs) == 0 {
				fmt.Println("No messages.")
				return nil
			}

			for _, m := range msgs {
				fmt.Printf("#%d [%s] %s <%s> (%s)\n    %s\n",
					m.ID,
					m.CreatedAt.Format(time.RFC3339),
					m.Name,
					m.Email,
					m.Purpose,
					m.Message,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of messages to show")

	return cmd
}
