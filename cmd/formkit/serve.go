package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/formhttp"
)

func newServeCmd(a *app) *cobra.Command {
	var schemaPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve whole-form and live field validation over HTTP",
		Long: `Serve a schema over HTTP until interrupted.

  POST /validate          JSON result, 422 when invalid
  POST /validate/{field}  rendered error block, as a DataStar patch when requested
  GET  /healthz           liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(schemaPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Addr
			}

			handlerOpts := []formhttp.HandlerOption{
				formhttp.WithLogger(a.log),
				formhttp.WithValidatorOptions(a.validatorOptions()...),
			}
			if a.cfg.RateBurst > 0 && a.cfg.RateInterval > 0 {
				handlerOpts = append(handlerOpts, formhttp.WithRateLimit(a.cfg.RateBurst, a.cfg.RateInterval))
			}
			h := formhttp.NewHandler(s, handlerOpts...)
			a.log.Info("serving schema", slog.Int("fields", len(s.Fields)))
			var opts []formhttp.ServerOption
			if a.cfg.ShutdownTimeout > 0 {
				opts = append(opts, formhttp.WithShutdownTimeout(a.cfg.ShutdownTimeout))
			}
			return formhttp.Run(cmd.Context(), addr, h, a.log, opts...)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file (.yaml, .toml or .json)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default FORMKIT_ADDR)")
	return cmd
}
