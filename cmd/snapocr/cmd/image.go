package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/snapocr/internal/export"
	"github.com/MeKo-Tech/snapocr/internal/pipeline"
	"github.com/MeKo-Tech/snapocr/internal/tesseract"
	"github.com/MeKo-Tech/snapocr/internal/utils"
)

const (
	outputFormatText = "text"
	outputFormatCSV  = "csv"
)

// imageCmd represents the image command.
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Extract text from screenshot images",
	Long: `Run the screenshot OCR pipeline on one or more image files.

Supported formats: JPEG, PNG, BMP, TIFF

Examples:
  snapocr image screenshot.png
  snapocr image *.png --format csv
  snapocr image editor.png --min-conf 0.4 --overlay annotated.png`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input files provided")
		}

		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		txtFile := cfg.Output.TextFile
		csvFile := cfg.Output.CSVFile
		overlayFile := cfg.Output.OverlayFile
		outputFile := cfg.Output.File
		exportRequested := txtFile != "" || csvFile != "" || overlayFile != "" || outputFile != ""
		if exportRequested && len(args) > 1 {
			return errors.New("--output, --txt, --csv and --overlay accept a single input file")
		}

		for _, pth := range args {
			if !utils.IsSupportedImage(pth) {
				return fmt.Errorf("unsupported image format: %s", pth)
			}
		}

		runCfg := cfg.PipelineConfig()
		eng := tesseract.NewEngine()
		ctx := cmd.Context()

		for _, pth := range args {
			res, err := pipeline.RunFile(ctx, eng, pth, runCfg)
			if err != nil {
				return fmt.Errorf("OCR failed for %s: %w", pth, err)
			}

			slog.Info("screenshot processed",
				"file", pth,
				"theme", res.Summary.Theme,
				"words", res.Summary.Words,
				"lines", res.Summary.Lines,
				"avg_confidence", res.Summary.AvgConfidence)

			switch cfg.Output.Format {
			case outputFormatCSV:
				if err := export.CSVTo(cmd.OutOrStdout(), res.Lines); err != nil {
					return fmt.Errorf("format csv failed: %w", err)
				}
			default:
				if len(args) > 1 {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", pth); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Lines, "\n")); err != nil {
					return err
				}
			}

			if outputFile != "" {
				if err := writeFormatted(outputFile, cfg.Output.Format, res.Lines); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", outputFile); err != nil {
					return err
				}
			}
			if txtFile != "" {
				if err := export.Text(txtFile, res.Lines); err != nil {
					return err
				}
			}
			if csvFile != "" {
				if err := export.CSV(csvFile, res.Lines); err != nil {
					return err
				}
			}
			if overlayFile != "" {
				if err := export.Overlay(overlayFile, res.Overlay); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

// writeFormatted writes the line list to path in the selected stdout format.
func writeFormatted(path, format string, lines []string) error {
	if format == outputFormatCSV {
		return export.CSV(path, lines)
	}
	return export.Text(path, lines)
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().Float64("scale", 2.5, "upscale factor applied before recognition")
	imageCmd.Flags().Float64("min-conf", 0.20, "minimum word confidence kept in the output (0..1)")
	imageCmd.Flags().String("lang", "eng", "recognition language")
	imageCmd.Flags().Bool("gpu", false, "use GPU acceleration if the engine supports it")
	imageCmd.Flags().Bool("allowlist", true, "restrict recognition to the code-oriented character set")
	imageCmd.Flags().String("format", outputFormatText, "stdout format: text or csv")
	imageCmd.Flags().StringP("output", "o", "", "write the formatted result to a file")
	imageCmd.Flags().String("txt", "", "write reconstructed lines to a plain text file")
	imageCmd.Flags().String("csv", "", "write numbered lines to a CSV file")
	imageCmd.Flags().String("overlay", "", "write the annotated overlay image to a file")

	_ = viper.BindPFlag("pipeline.scale", imageCmd.Flags().Lookup("scale"))
	_ = viper.BindPFlag("pipeline.min_confidence", imageCmd.Flags().Lookup("min-conf"))
	_ = viper.BindPFlag("pipeline.language", imageCmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag("pipeline.gpu", imageCmd.Flags().Lookup("gpu"))
	_ = viper.BindPFlag("pipeline.allowlist", imageCmd.Flags().Lookup("allowlist"))
	_ = viper.BindPFlag("output.format", imageCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.file", imageCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.text_file", imageCmd.Flags().Lookup("txt"))
	_ = viper.BindPFlag("output.csv_file", imageCmd.Flags().Lookup("csv"))
	_ = viper.BindPFlag("output.overlay_file", imageCmd.Flags().Lookup("overlay"))
}
