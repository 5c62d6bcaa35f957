package main

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const version = "0.1.0"

// app carries what the root command resolves for its subcommands.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	envFiles []string
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "formkit",
		Short: "Validate form submissions against a schema",
		Long: `formkit validates form submissions against a declarative schema.

Settings are read from FORMKIT_* environment variables, optionally loaded
from .env files with --env-file.`,
		Example: `  # Check a submission
  formkit check --schema signup.yaml --set email=jean@exemple.fr --set name=Jean

  # Serve live validation
  formkit serve --schema signup.yaml --addr :8080`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from these files")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default FORMKIT_LOG_LEVEL)")
	cmd.SetVersionTemplate("formkit version {{.Version}}\n")

	cmd.AddCommand(newCheckCmd(a), newServeCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) (err error) {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return errors.Wrap(err, "loading env files")
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("configuring logger: %v", r)
		}
	}()
	a.log = logger.New(
		logger.WithLevelName(level),
		logger.WithFormat(logger.Format(a.cfg.LogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("formkit")),
		formhttp.LogRequestID(),
	)
	return nil
}

// loadSchema reads the schema file, falling back to FORMKIT_SCHEMA, and
// applies deployment defaults to it.
func (a *app) loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		path = a.cfg.Schema
	}
	if path == "" {
		return nil, errors.New("no schema given: use --schema or FORMKIT_SCHEMA")
	}

	s, err := schema.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schema %s", path)
	}
	if a.cfg.PhoneRegion != "" {
		s.SetDefaults(schema.KindTel, validator.Bag{"defaultRegion": a.cfg.PhoneRegion})
	}
	a.log.Debug("schema loaded", slog.String("path", path), logger.Fields(s.Names()))
	return s, nil
}

// validatorOptions are the deployment defaults; schema settings are layered on top.
func (a *app) validatorOptions() []validator.Option {
	return []validator.Option{
		validator.WithLogger(a.log),
		validator.WithLanguage(a.cfg.Language),
		validator.WithArrayStrategy(a.cfg.ArrayStrategy),
	}
}

// guard turns a panic raised by misconfigured field options into an error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "invalid schema options")
				return
			}
			err = errors.Newf("invalid schema options: %s", fmt.Sprint(r))
		}
	}()
	fn()
	return nil
}
