package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/withreach/gip-checkout/api"
	"github.com/withreach/gip-checkout/pkg/clientip"
	"github.com/withreach/gip-checkout/pkg/config"
	"github.com/withreach/gip-checkout/pkg/httpserver"
	"github.com/withreach/gip-checkout/pkg/logger"
	"github.com/withreach/gip-checkout/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"paycheck"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	API  api.Config
	HTTP httpserver.Config
}

// envOptions are the persistent flags that control where configuration is
// read from.
type envOptions struct {
	files  []string
	prefix string
}

func loadConfig(o envOptions) (appConfig, error) {
	var cfg appConfig
	var opts []config.Option
	if len(o.files) > 0 {
		opts = append(opts, config.WithEnvFiles(o.files...))
	}
	if o.prefix != "" {
		opts = append(opts, config.WithPrefix(o.prefix))
	}
	err := config.Load(&cfg, opts...)
	return cfg, err
}

// newLogger applies environment defaults first so LOG_LEVEL and LOG_FORMAT
// can override them.
func newLogger(cfg appConfig, cmd *cobra.Command) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}

func newRootCmd() *cobra.Command {
	var env envOptions

	root := &cobra.Command{
		Use:           "paycheck",
		Short:         "Validate and normalize checkout payment requests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&env.files, "env-file", nil, "load environment from these files instead of .env")
	root.PersistentFlags().StringVar(&env.prefix, "env-prefix", "", "only read variables with this prefix, e.g. PAYCHECK_")

	root.AddCommand(
		newValidateCmd(),
		newServeCmd(&env),
		newVersionCmd(),
	)
	return root
}
