package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/snapocr/internal/batch"
	"github.com/MeKo-Tech/snapocr/internal/tesseract"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process many screenshots with a worker pool",
	Long: `Run the screenshot OCR pipeline over multiple files or directories.

Directories are expanded to the supported image files inside them; failures
on individual files are reported inline without aborting the batch.

Examples:
  snapocr batch ./screenshots
  snapocr batch ./captures --recursive --workers 4
  snapocr batch a.png b.png --format csv --output results.csv`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input paths provided")
		}

		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		workers, _ := cmd.Flags().GetInt("workers")
		recursive, _ := cmd.Flags().GetBool("recursive")
		include, _ := cmd.Flags().GetStringSlice("include")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

		// Local flags take precedence over the loaded config.
		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		outputFile := cfg.Output.File
		if cmd.Flags().Changed("output") {
			outputFile, _ = cmd.Flags().GetString("output")
		}
		switch format {
		case outputFormatText, outputFormatCSV:
		default:
			return fmt.Errorf("output format must be text or csv, got %q", format)
		}

		bcfg := batch.DefaultConfig()
		bcfg.Pipeline = cfg.PipelineConfig()
		if workers > 0 {
			bcfg.Workers = workers
		}
		bcfg.Recursive = recursive
		bcfg.IncludePatterns = include
		bcfg.ExcludePatterns = exclude

		res, err := batch.ProcessBatch(cmd.Context(), tesseract.NewEngine(), args, bcfg)
		if err != nil {
			return err
		}

		slog.Info("batch complete",
			"files", len(res.Files),
			"failed", len(res.Failed()),
			"workers", res.WorkerCount,
			"duration", res.Duration)

		out, err := batch.FormatResults(res, format)
		if err != nil {
			return fmt.Errorf("format %s failed: %w", format, err)
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(out), 0o600); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", outputFile); err != nil {
				return err
			}
			return nil
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("workers", 0, "worker count (default: number of CPUs)")
	batchCmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	batchCmd.Flags().StringSlice("include", nil, "glob patterns of file names to include")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns of file names to exclude")
	batchCmd.Flags().String("format", outputFormatText, "output format: text or csv")
	batchCmd.Flags().StringP("output", "o", "", "write the formatted results to a file")
}
