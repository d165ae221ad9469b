package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/withreach/gip-checkout/api"
	"github.com/withreach/gip-checkout/pkg/httpserver"
	"github.com/withreach/gip-checkout/pkg/logger"
)

func newServeCmd(env *envOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*env)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			log.InfoContext(cmd.Context(), "starting",
				logger.Component("paycheck"),
				"version", version,
				"infer_consumer_ip", cfg.API.InferConsumerIP,
			)

			srv := httpserver.New(cfg.HTTP, log)
			return srv.Run(cmd.Context(), api.New(cfg.API, log, reg))
		},
	}
}
