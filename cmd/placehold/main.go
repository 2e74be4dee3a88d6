// placehold - placeholder image generator.
//
// Usage:
//
//	placehold [dimensions] [flags]
//	placehold init [--force]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/config"
	"github.com/xob0t/placehold/pkg/console"
	"github.com/xob0t/placehold/pkg/generator"
	"github.com/xob0t/placehold/pkg/logging"
	"github.com/xob0t/placehold/pkg/options"
	"github.com/xob0t/placehold/pkg/output"
	"github.com/xob0t/placehold/pkg/placehold"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

// errFailed signals a failure that has already been printed.
var errFailed = errors.New("placehold failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fatal(err)
		}
		os.Exit(1)
	}
}

type rootFlags struct {
	opts       options.Options
	configPath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "placehold [dimensions]",
		Short: "Generate placeholder images",
		Long: `Generate solid-color placeholder images with a centered text label.

Dimensions are WIDTHxHEIGHT, e.g. 800x600 (1 to 10000 px per side).`,
		Example: `  placehold 800x600
  placehold 1920x1080 -b "#1e1e1e" -c "#ffffff" -t "Hero banner" -f webp
  placehold 300x300 -o avatars/user --border
  placehold 640x480 --batch 20 -o ./fixtures`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := ""
			if len(args) == 1 {
				dims = args[0]
			}
			return runGenerate(cmd.Context(), f, dims, stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.opts.Background, "background", "b", "", "background hex color (default #CCCCCC)")
	fl.StringVarP(&f.opts.Color, "color", "c", "", "text hex color (default #666666)")
	fl.StringVarP(&f.opts.Format, "format", "f", "", "output format: png, jpg, jpeg, webp (default png)")
	fl.StringVarP(&f.opts.Output, "output", "o", "", "output file, or directory in batch mode")
	fl.StringVarP(&f.opts.Text, "text", "t", "", "overlay text (default: the dimensions)")
	fl.StringVarP(&f.opts.FontSize, "fontsize", "s", "", "font size 1-200 or auto (default auto)")
	fl.BoolVar(&f.opts.Border, "border", false, "draw a 2px border around the image")
	fl.StringVar(&f.opts.Batch, "batch", "", "generate N images (1-1000) into one directory")
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default ~/.placehold/config.yaml)")

	cmd.SetVersionTemplate("placehold {{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "print the version")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(newInitCmd(&f.configPath, stdout))
	return cmd
}

func newInitCmd(configPath *string, stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*configPath)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Created: %s\n", path)
			fmt.Fprintln(stdout, "Edit it or override values with PLACEHOLD_* environment variables.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func runGenerate(ctx context.Context, f rootFlags, dims string, stdout, stderr io.Writer) error {
	printer := console.New(stdout, stderr)

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return apperr.NewConfigError("log level", err)
	}
	defer logger.Sync()

	opts := f.opts.WithDefaults(cfg.Defaults.Options())
	settings, err := options.Build(opts, dims)
	if err != nil {
		printValidation(printer, err)
		return errFailed
	}

	if !settings.IsBatch() && settings.Output != "" && !options.IsRecognizedOutputPath(settings.Output) {
		printer.Warn(fmt.Sprintf("Unrecognized extension in %q, .%s will be appended", settings.Output, settings.Format))
	}

	fonts, err := generator.NewFontManager(cfg.FontPath, logger)
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	defer fonts.Close()

	svc := placehold.NewService(
		generator.NewImageRenderer(fonts, logger),
		output.NewResolver(cfg.ExportDir),
		placehold.NewConsoleReporter(printer),
		logger,
	)

	if settings.IsBatch() {
		result, err := svc.RunBatch(ctx, settings)
		if err != nil {
			printer.Error(err.Error())
			return errFailed
		}
		if result.Failed() {
			return errFailed
		}
		return nil
	}

	if _, err := svc.Generate(ctx, settings); err != nil {
		printer.Error(fmt.Sprintf("Failed to generate placeholder: %v", err))
		return errFailed
	}
	return nil
}

func printValidation(p *console.Printer, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || len(appErr.Details) == 0 {
		p.Error(err.Error())
		return
	}
	p.Error("Validation failed:")
	for _, msg := range appErr.Details {
		p.Error("  " + msg)
	}
}

// loadConfig reads an explicitly named file, which must exist, or the
// default file when present.
func loadConfig(flagPath string) (*config.Config, error) {
	if flagPath != "" {
		return config.Load(flagPath)
	}
	return config.LoadDefault()
}

func resolveConfigPath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	return config.DefaultPath()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
