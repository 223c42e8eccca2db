package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/johann/sgetools/internal/config"
	"github.com/johann/sgetools/internal/storage"
	"github.com/johann/sgetools/internal/webzip"
	"github.com/spf13/cobra"
)

func publish(cmd *cobra.Command, cfg *config.WebZipConfig, result *webzip.Result) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(result.Path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploading to bucket %s...\n", cfg.S3Bucket)
	key, err := client.Put(ctx, filepath.Base(result.Path), f, info.Size())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published s3://%s/%s\n", cfg.S3Bucket, key)
	return nil
}
