// Command viewmillc is the command-line front end over pkg/api. It owns
// flag parsing, viewmill.yaml loading, and operational logging; the
// transform itself is entirely pkg/api's concern. Grounded on
// cue-lang-cue's cobra.Command wiring and rajajisai-bot-go's cmd/main.go
// zap setup (zap.NewProductionConfig, level override, Sync on exit).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viewmill/viewmill/internal/projectconfig"
	"github.com/viewmill/viewmill/pkg/api"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		target     string
		syntax     string
		out        string
		configPath string
		noHeader   bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "viewmillc <file>",
		Short: "rewrite a reactive component file into runtime calls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			defer logger.Sync()

			inputPath := args[0]
			if configPath == "" {
				configPath = filepath.Join(filepath.Dir(inputPath), projectconfig.DefaultFileName)
			}
			cfg, err := loadProjectConfig(configPath, logger)
			if err != nil {
				return err
			}
			if target == "" {
				target = cfg.Target
			}
			if syntax == "" {
				syntax = cfg.Syntax
			}
			if !noHeader {
				noHeader = cfg.NoHeader
			}

			opts := api.TransformOptions{
				Target:          api.Target(target),
				CanEmitWarnings: cfg.CanEmitWarnings,
				NoHeader:        noHeader,
				Sourcefile:      inputPath,
			}
			if s, ok := parseSyntaxFlag(syntax); ok {
				opts.Syntax = s
			}

			result, err := api.TransformFile(inputPath, opts)
			if err != nil {
				logger.Error("transform failed", zap.String("file", inputPath), zap.Error(err))
				return err
			}
			for _, e := range result.Errors {
				logger.Error(e.Data.Text, zap.String("file", inputPath))
			}
			for _, w := range result.Warnings {
				logger.Warn(w.Data.Text, zap.String("file", inputPath))
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d error(s) transforming %s", len(result.Errors), inputPath)
			}

			if out == "" {
				out = outputPathFor(inputPath, result.Ext)
			}
			if err := os.WriteFile(out, []byte(result.JS), 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", out, err)
			}
			logger.Info("wrote output", zap.String("file", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "ECMAScript target (es5, es2020, esnext, ...); overrides viewmill.yaml")
	cmd.Flags().StringVar(&syntax, "syntax", "", "source syntax: js or ts; inferred from the file extension if omitted")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path; defaults to the input path with its extension swapped")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to viewmill.yaml; defaults to a sibling of the input file")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress the generated-file banner")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}

// loadProjectConfig loads viewmill.yaml, treating a missing file as "use
// flag defaults" rather than a fatal condition.
func loadProjectConfig(path string, logger *zap.Logger) (projectconfig.Config, error) {
	cfg, err := projectconfig.Load(path)
	if err == nil {
		logger.Debug("loaded project config", zap.String("path", path))
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return projectconfig.Config{}, nil
	}
	return projectconfig.Config{}, err
}

func parseSyntaxFlag(s string) (api.Syntax, bool) {
	switch s {
	case "js":
		return api.Js, true
	case "ts":
		return api.Ts, true
	default:
		return 0, false
	}
}

func outputPathFor(inputPath, ext string) string {
	base := inputPath[:len(inputPath)-len(filepath.Ext(inputPath))]
	return base + "." + ext
}
