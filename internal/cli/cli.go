package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/modgraph/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MODGRAPH"

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly (help was shown), or
// an *ExitError for usage mistakes.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var parsed *app.Config
	root := newRootCommand(v, &parsed)
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, usageError(err)
	}
	if parsed == nil {
		// Help or a bare "modgraph" invocation.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "command", parsed.Command, "paths", parsed.Paths)
	return parsed, false, nil
}

func newRootCommand(v *viper.Viper, parsed **app.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "modgraph",
		Short: "Module dependency graph and build-plan tool.",
		Long: `modgraph reads module manifests (HCL or YAML), resolves their public and
private dependencies into a graph, rejects cycles and prints a deterministic
build plan, the graph itself or each module's include visibility.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfigFile(v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file with default flag values.")
	pf.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringP("format", "o", "text", "Output format. Options: 'text', 'json', 'yaml', 'dot'.")
	pf.Int("workers", 4, "Number of concurrent workers.")
	pf.Int("healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	pf.String("platform", "", "Target platform passed to the build environment.")
	pf.String("configuration", "", "Build configuration such as Development or Shipping.")
	pf.String("toolchain", "", "Toolchain name passed to the build environment.")
	pf.Bool("strict", false, "Reject modules that list a dependency as both public and private.")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		newSubcommand(v, parsed, app.CommandPlan, "Print the build plan.", nil),
		newSubcommand(v, parsed, app.CommandGraph, "Print the module graph.", nil),
		newSubcommand(v, parsed, app.CommandVisibility, "Print each module's effective visibility set.", func(cmd *cobra.Command) {
			cmd.Flags().StringP("module", "m", "", "Only resolve this module.")
			_ = v.BindPFlag("module", cmd.Flags().Lookup("module"))
		}),
		newSubcommand(v, parsed, app.CommandBuild, "Run the build plan with the dry-run compiler.", nil),
	)
	return root
}

func newSubcommand(v *viper.Viper, parsed **app.Config, command app.Command, short string, extra func(*cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(command) + " [PATH...]",
		Short: short,
		Long: short + `

PATH is a manifest file or a directory searched recursively for *.hcl,
*.yaml and *.yml manifests. Without PATH the 'paths' list from the config
file or MODGRAPH_PATHS is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper(v, command, args)
			if err != nil {
				return usageError(err)
			}
			*parsed = cfg
			return nil
		},
	}
	if extra != nil {
		extra(cmd)
	}
	return cmd
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return usageError(fmt.Errorf("failed to read config file %s: %w", path, err))
	}
	slog.Debug("Config file loaded.", "path", path)
	return nil
}

func configFromViper(v *viper.Viper, command app.Command, args []string) (*app.Config, error) {
	paths := args
	if len(paths) == 0 {
		paths = v.GetStringSlice("paths")
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifest path given: pass PATH or set 'paths' in the config file")
	}

	var module string
	if command == app.CommandVisibility {
		module = v.GetString("module")
	}

	return app.NewConfig(app.Config{
		Command:         command,
		Paths:           paths,
		Module:          module,
		Format:          v.GetString("format"),
		LogFormat:       strings.ToLower(v.GetString("log-format")),
		LogLevel:        strings.ToLower(v.GetString("log-level")),
		HealthcheckPort: v.GetInt("healthcheck-port"),
		WorkerCount:     v.GetInt("workers"),
		Platform:        v.GetString("platform"),
		Configuration:   v.GetString("configuration"),
		Toolchain:       v.GetString("toolchain"),
		Strict:          v.GetBool("strict"),
	})
}
