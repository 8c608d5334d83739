package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahulxs/folio_backend/config"
	s3pkg "github.com/rahulxs/folio_backend/pkg/s3"
)

func NewUploadResumeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload-resume <file>",
		Short: "Publish a resume PDF to the configured bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if cfg.Resume.Key == "" {
				return fmt.Errorf("resume.key is not configured")
			}

			client, err := s3pkg.New(cfg.Resume.S3)
			if err != nil {
				return fmt.Errorf("failed to create s3 client: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %q: %w", args[0], err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat %q: %w", args[0], err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if err := client.Upload(ctx, cfg.Resume.Key, "application/pdf", f, info.Size()); err != nil {
				return err
			}

			fmt.Printf("Uploaded %s as %s\n", args[0], cfg.Resume.Key)
			return nil
		},
	}

	return cmd
}
