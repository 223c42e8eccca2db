package main

import (
	"fmt"
	"os"

	"github.com/johann/sgetools/internal/config"
	"github.com/johann/sgetools/internal/webzip"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webzip",
		Short: "Zip a web build for distribution",
		Long: `webzip packages the output of a web build into a deflate ZIP archive,
suitable for uploading to itch.io.

The files are read from the current directory. By default these are
CharacterGame.data, CharacterGame.js, CharacterGame.wasm and index.html,
written to out.zip. Both can be changed in webzip.yaml or with the
WEBZIP_FILES and WEBZIP_OUTPUT environment variables.

If an S3 bucket is configured (s3_bucket or WEBZIP_S3_BUCKET) the archive is
uploaded after it has been written.`,
		Args: cobra.NoArgs,
		RunE: runWebZip,
	}
}

func runWebZip(cmd *cobra.Command, args []string) error {
	// Arguments are valid by now, failures past this point are not usage errors
	cmd.SilenceUsage = true

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.LoadWebZip(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating archive: %s\n", cfg.Output)

	result, err := webzip.Build(cfg.Files, cfg.Output)
	if err != nil {
		return err
	}

	var total int64
	for _, e := range result.Entries {
		fmt.Fprintf(out, "  %-24s %10d  %s\n", e.Name, e.Size, e.CID)
		total += e.Size
	}
	fmt.Fprintf(out, "Total entries: %d (%d bytes)\n", len(result.Entries), total)

	if cfg.Publish() {
		return publish(cmd, cfg, result)
	}
	return nil
}
