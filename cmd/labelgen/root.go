package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vrhotelo/labelgen/internal/core/routing"
	"github.com/vrhotelo/labelgen/internal/shell/output"
	"github.com/vrhotelo/labelgen/internal/shell/subdomains"
)

const (
	defaultSubdomainsFile = "subdomains.txt"
	defaultOutputFile     = "traefik-config.txt"
)

// Stages reported in RunError.Op.
const (
	opConfig = "config"
	opLoad   = "load"
	opWrite  = "write"
)

// options holds the command line flags.
type options struct {
	configPath     string
	format         string
	composeService string
	debug          bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "labelgen <app_id> [subdomains_file] [output_file]",
		Short: "Generate Traefik and caddy labels for a Coolify application",
		Long: `labelgen reads tenant subdomains (one per line) and writes the reverse proxy
labels that route the base domain, the sslip.io fallback domain and every
subdomain to the application, with large file upload support.`,
		Example: `  labelgen fwkw8g8gww00g4ggg0w8gg4s
  labelgen fwkw8g8gww00g4ggg0w8gg4s custom-subdomains.txt
  labelgen fwkw8g8gww00g4ggg0w8gg4s subdomains.txt output.txt
  labelgen fwkw8g8gww00g4ggg0w8gg4s subdomains.txt - --format yaml`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opts, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: labels, yaml or compose")
	cmd.Flags().StringVar(&opts.composeService, "compose-service", "", "Service to label in compose format")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return errMissingAppID
	}
	return cobra.MaximumNArgs(3)(cmd, args)
}

// usageText is printed when the app id is missing.
func usageText(cmd *cobra.Command) string {
	var b strings.Builder
	b.WriteString(cmd.UsageString())
	fmt.Fprintf(&b, "\nDefault subdomains file: %s\n", defaultPath(defaultSubdomainsFile))
	fmt.Fprintf(&b, "Default output file: %s\n", defaultPath(defaultOutputFile))
	return b.String()
}

// defaultPath resolves name next to the executable.
func defaultPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

func generate(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return &RunError{Op: opConfig, Err: err, ExitCode: ExitFailure}
	}

	// Flags override config
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = opts.format
	}
	if cmd.Flags().Changed("compose-service") {
		cfg.Output.ComposeService = opts.composeService
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return &RunError{Op: opConfig, Err: err, ExitCode: ExitFailure}
	}

	stdout := cmd.OutOrStdout()

	appID := args[0]
	subdomainsPath := defaultPath(defaultSubdomainsFile)
	if len(args) > 1 {
		subdomainsPath = args[1]
	}
	outputPath := defaultPath(defaultOutputFile)
	if len(args) > 2 {
		outputPath = args[2]
	}

	// Progress messages would corrupt output written to stdout.
	progress := stdout
	if outputPath == output.StdoutPath {
		progress = io.Discard
	}

	logger := SetupLogger(cfg, progress)
	params := cfg.Params(appID)

	fmt.Fprintf(progress, "Reading subdomains from: %s\n", subdomainsPath)
	subs, err := subdomains.Load(subdomainsPath)
	if err != nil {
		return &RunError{Op: opLoad, Err: err, ExitCode: ExitFailure}
	}

	if len(subs) == 0 {
		fmt.Fprintln(progress, "Warning: No subdomains found in file")
	} else {
		fmt.Fprintf(progress, "Found %d subdomain(s):\n", len(subs))
		for _, sub := range subs {
			fmt.Fprintf(progress, "  - %s\n", params.SubdomainHost(sub))
		}
	}

	fmt.Fprintf(progress, "\nGenerating Traefik configuration for app: %s\n", appID)
	lines := routing.Generate(params, subs)
	logger.Debug("generated labels",
		"app_id", appID,
		"subdomains", len(subs),
		"lines", len(lines),
		"base_domain", params.BaseDomain,
	)

	w := output.NewWriter(format, cfg.Output.ComposeService, stdout, logger)
	if err := w.Write(outputPath, lines); err != nil {
		return &RunError{Op: opWrite, Err: err, ExitCode: ExitFailure}
	}

	fmt.Fprintf(progress, "\n✓ Configuration saved to: %s\n", outputPath)
	fmt.Fprintln(progress, "\nNext steps:")
	fmt.Fprintf(progress, "1. Review the generated configuration in %s\n", outputPath)
	fmt.Fprintln(progress, "2. Copy the contents to your Coolify application settings")
	fmt.Fprintln(progress, "3. Restart your application for changes to take effect")
	fmt.Fprintln(progress, "\nNote: All routes include large file upload support (5GB max body, 10MB in memory)")

	return nil
}
