package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Aman-s12345/crowdoc/internal/analyzer"
	"github.com/Aman-s12345/crowdoc/internal/config"
	"github.com/Aman-s12345/crowdoc/internal/generator"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	configPath string
	verbose    bool
	flags      config.Config
}

func newGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate an OpenAPI specification from C++ source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts, args)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return Generate(cfg, logger, cmd.OutOrStdout())
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.StringSliceVarP(&opts.flags.Inputs, "input", "i", defaults.Inputs, "C++ source files to scan")
	flags.StringVarP(&opts.flags.Output, "output", "o", defaults.Output, "Output file path or '-' for stdout")
	flags.StringVarP(&opts.flags.Format, "format", "f", "", "Output format: json or yaml (default from output extension)")
	flags.StringVar(&opts.flags.Title, "title", defaults.Title, "API title")
	flags.StringVar(&opts.flags.Version, "version", defaults.Version, "API version")
	flags.StringVar(&opts.flags.Description, "description", defaults.Description, "API description")
	flags.StringVar(&opts.flags.ServerURL, "server", defaults.ServerURL, "Server URL")
	flags.StringVar(&opts.flags.ServerDescription, "server-description", defaults.ServerDescription, "Server description")

	return cmd
}

// resolveConfig layers defaults, the config file, flags the user actually
// set and finally positional file arguments.
func resolveConfig(cmd *cobra.Command, opts *generateOptions, args []string) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Flags the user set override the file verbatim, so an explicit empty
	// value clears a default.
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Inputs = opts.flags.Inputs
	} else if len(args) > 0 {
		cfg.Inputs = args
	}
	if flags.Changed("output") {
		cfg.Output = opts.flags.Output
	}
	if flags.Changed("format") {
		cfg.Format = opts.flags.Format
	}
	if flags.Changed("title") {
		cfg.Title = opts.flags.Title
	}
	if flags.Changed("version") {
		cfg.Version = opts.flags.Version
	}
	if flags.Changed("description") {
		cfg.Description = opts.flags.Description
	}
	if flags.Changed("server") {
		cfg.ServerURL = opts.flags.ServerURL
	}
	if flags.Changed("server-description") {
		cfg.ServerDescription = opts.flags.ServerDescription
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Generate runs one extraction: analyze the inputs, assemble the document,
// write it and print a confirmation to out.
func Generate(cfg config.Config, logger *slog.Logger, out io.Writer) error {
	if logger == nil {
		logger = slog.Default()
	}

	analysis, err := analyzer.New(logger).AnalyzeFiles(cfg.Inputs...)
	if err != nil {
		return err
	}

	spec := generator.New(generator.Config{
		Title:             cfg.Title,
		Version:           cfg.Version,
		Description:       cfg.Description,
		ServerURL:         cfg.ServerURL,
		ServerDescription: cfg.ServerDescription,
	}, logger).Generate(analysis)

	format := cfg.OutputFormat()
	if err := generator.WriteFile(spec, cfg.Output, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Output != "-" {
		fmt.Fprintf(out, "OpenAPI %s saved as %s\n", strings.ToUpper(format), cfg.Output)
	}
	return nil
}
