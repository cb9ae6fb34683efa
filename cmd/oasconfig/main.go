// FILE: cmd/oasconfig/main.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/oasconfig"
)

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	configFile string
	envPrefix  string
	sets       []string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:           "oasconfig",
		Short:         "Inspect resolved MicroProfile OpenAPI settings",
		Long:          `Resolve mp.openapi.* settings from a configuration file, the environment and --set overrides, and inspect the result.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.configFile, "config", "c", "", "configuration file (.properties, .toml, .yaml, .json); discovered when empty")
	flags.StringVar(&g.envPrefix, "env-prefix", "", "only capture environment variables with this prefix")
	flags.StringArrayVar(&g.sets, "set", nil, "override a property, key=value (repeatable)")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log setting resolution")

	root.AddCommand(
		newShowCmd(g),
		newMatchCmd(g),
		newServersCmd(g),
		newSourcesCmd(g),
	)
	return root
}

func newShowCmd(g *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every resolved setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, logger, err := g.resolver()
			if err != nil {
				return err
			}
			defer logger.Sync()

			settings, err := r.Snapshot()
			if err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), format, settings)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func newMatchCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "match <packages|classes> NAME...",
		Short:     "Report scan include/exclude decisions for names",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"packages", "classes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, logger, err := g.resolver()
			if err != nil {
				return err
			}
			defer logger.Sync()

			var include, exclude oasconfig.Matcher
			switch args[0] {
			case "packages":
				if include, err = r.ScanPackages(); err != nil {
					return err
				}
				exclude, err = r.ScanExcludePackages()
			case "classes":
				if include, err = r.ScanClasses(); err != nil {
					return err
				}
				exclude, err = r.ScanExcludeClasses()
			default:
				return fmt.Errorf("unknown kind %q, expected packages or classes", args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "include: %q\nexclude: %q\n", include.String(), exclude.String())
			for _, name := range args[1:] {
				fmt.Fprintf(out, "%s\tinclude=%t\texclude=%t\n", name, include.Matches(name), exclude.Matches(name))
			}
			return nil
		},
	}
}

func newServersCmd(g *globalOptions) *cobra.Command {
	var paths, operations []string
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Print global, per-path and per-operation server overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, logger, err := g.resolver()
			if err != nil {
				return err
			}
			defer logger.Sync()

			out := cmd.OutOrStdout()
			servers, err := r.Servers()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "global\t%s\n", joinSorted(servers.ToSlice()))

			for _, path := range paths {
				set, err := r.PathServers(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "path %s\t%s\n", path, joinSorted(set.ToSlice()))
			}
			for _, op := range operations {
				set, err := r.OperationServers(op)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "operation %s\t%s\n", op, joinSorted(set.ToSlice()))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&paths, "path", nil, "path to look up (repeatable)")
	cmd.Flags().StringArrayVar(&operations, "operation", nil, "operation id to look up (repeatable)")
	return cmd
}

func newSourcesCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Print every property with the value held by each source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, logger, err := g.resolver()
			if err != nil {
				return err
			}
			defer logger.Sync()

			props, ok := r.Provider().(*oasconfig.Properties)
			if !ok {
				return fmt.Errorf("provider %T has no source information", r.Provider())
			}
			_, err = io.WriteString(cmd.OutOrStdout(), props.Debug())
			return err
		},
	}
}

// resolver builds the logger and a Resolver from the global flags.
func (g *globalOptions) resolver() (*oasconfig.Resolver, *zap.Logger, error) {
	logger, err := newLogger(g.verbose)
	if err != nil {
		return nil, nil, err
	}

	args := make([]string, 0, len(g.sets))
	for _, kv := range g.sets {
		if !strings.Contains(kv, "=") {
			return nil, nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		args = append(args, "--"+kv)
	}

	b := oasconfig.NewBuilder().
		WithArgs(args).
		WithEnvPrefix(g.envPrefix).
		WithResolverOptions(oasconfig.WithLogger(logger))
	if g.configFile != "" {
		b = b.WithFile(g.configFile)
	} else {
		b = b.WithFileDiscovery(oasconfig.DefaultDiscoveryOptions("microprofile-config"))
	}

	r, err := b.BuildResolver()
	if err != nil {
		if !errors.Is(err, oasconfig.ErrConfigNotFound) {
			return nil, nil, err
		}
		reportMissingConfig(logger, g.configFile)
	}
	if path := r.Provider().(*oasconfig.Properties).ConfigFilePath(); path != "" {
		logger.Debug("configuration file loaded", zap.String("path", path))
	}
	return r, logger, nil
}

// reportMissingConfig logs a missing configuration file. An explicit --config
// path that does not exist is surfaced at the default level.
func reportMissingConfig(logger *zap.Logger, path string) {
	if path != "" {
		logger.Warn("configuration file not found, using environment and overrides only",
			zap.String("path", path))
		return
	}
	logger.Info("no configuration file, using environment and overrides only")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func writeSettings(w io.Writer, format string, settings *oasconfig.Settings) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(settings); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", format)
	}
}

func joinSorted(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	sort.Strings(items)
	return strings.Join(items, ",")
}
