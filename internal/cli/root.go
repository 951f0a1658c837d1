// Package cli implements the parafind command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/parafind"
	"github.com/tsawler/parafind/internal/config"
	"github.com/tsawler/parafind/internal/logger"
	"github.com/tsawler/parafind/ocr"
)

// flags holds the command line flags of one command instance.
type flags struct {
	cfgFile        string
	debugLevel     int
	output         string
	preRecognition bool
	plainText      bool
	language       string
	pageSegMode    int
	verbose        bool
}

// NewRootCommand creates the parafind command.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "parafind [flags] input_file",
		Short: "Find the paragraphs of recognized page text",
		Long: `parafind splits the text lines of a recognized page into paragraphs,
using indentation, alignment and sentence cues.

Supported inputs:
  - hOCR documents (.hocr, .html)
  - JSON text blocks or rows (.json)
  - page images (.png, .jpg, .tif, .bmp, .webp), when built with -tags ocr`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.cfgFile)
			if err != nil {
				return err
			}
			updateConfigFromFlags(cmd, &f, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.NewLogger(cfg.LogDebug)
			defer func() {
				_ = log.Sync()
			}()

			return run(cmd, args[0], cfg, log)
		},
	}

	rootCmd.Flags().StringVar(&f.cfgFile, "config", "", "config file (default is $HOME/.parafind.yaml)")
	rootCmd.Flags().IntVar(&f.debugLevel, "debug-level", 0, "detector debug level, 0 to 3")
	rootCmd.Flags().StringVarP(&f.output, "output", "o", config.OutputTable, "output format: table or json")
	rootCmd.Flags().BoolVar(&f.preRecognition, "pre-recognition", false, "ignore word texts and use geometry only")
	rootCmd.Flags().BoolVar(&f.plainText, "plain-text", false, "read word cues from bytes, for mostly ASCII text")
	rootCmd.Flags().StringVar(&f.language, "lang", "eng", "OCR language(s) for image input, e.g. eng+fra")
	rootCmd.Flags().IntVar(&f.pageSegMode, "psm", int(ocr.PSM_AUTO), "Tesseract page segmentation mode for image input, 0 to 13")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")

	return rootCmd
}

// updateConfigFromFlags lets flags given on the command line override the
// configuration.
func updateConfigFromFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	if cmd.Flags().Changed("debug-level") {
		cfg.DebugLevel = f.debugLevel
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = f.output
	}
	if cmd.Flags().Changed("pre-recognition") {
		cfg.PreRecognition = f.preRecognition
	}
	if cmd.Flags().Changed("plain-text") {
		cfg.PlainText = f.plainText
	}
	if cmd.Flags().Changed("psm") {
		cfg.PageSegMode = f.pageSegMode
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = f.language
	}
	if cmd.Flags().Changed("verbose") {
		cfg.LogDebug = f.verbose
	}
}

func run(cmd *cobra.Command, input string, cfg *config.Config, log *zap.Logger) error {
	ext := parafind.Open(input).
		Debug(cfg.DebugLevel).
		DebugOutput(cmd.ErrOrStderr()).
		Logger(log).
		Language(cfg.Language).
		PageSegMode(ocr.PageSegMode(cfg.PageSegMode))
	if cfg.PreRecognition {
		ext = ext.PreRecognition()
	} else if cfg.PlainText {
		ext = ext.PlainText()
	}

	results, err := ext.Detect()
	if err != nil {
		return err
	}
	log.Debug("detection finished", zap.String("input", input), zap.Int("blocks", len(results)))

	if cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), results)
	}
	renderTable(cmd.OutOrStdout(), results)
	return nil
}
