package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/observability"
)

const envPrefix = "MSTBENCH"

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	config.SetDefaults(c.v)

	root := &cobra.Command{
		Use:           "mstbench",
		Short:         "Compare Prim and Kruskal minimum spanning trees over a batch of graphs.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initialize()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "config file (default ./mstbench.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console or json)")
	flags.String("log-file", "", "also write JSON logs to this rotating file")
	c.bind(flags, "log-level", "logger.level")
	c.bind(flags, "log-format", "logger.format")
	c.bind(flags, "log-file", "logger.log_file")

	root.AddCommand(c.newRunCmd(), c.newGenerateCmd(), c.newReportCmd(), newVersionCmd())

	return root
}

// bind ties a flag to a configuration key. Unknown flag names are a
// programming error.
func (c *cli) bind(flags *pflag.FlagSet, name, key string) {
	if err := c.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", name, err))
	}
}

// initialize reads the config file and environment, validates the result,
// publishes it with config.Set and starts the global logger.
func (c *cli) initialize() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigName("mstbench")
		c.v.SetConfigType("yaml")
	}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config.Set(cfg)

	observability.InitializeLogger(cfg.Logger)
	observability.GetLogger().Debug("Configuration loaded.",
		zap.String("config_file", c.v.ConfigFileUsed()),
		zap.String("version", Version))

	return nil
}
