package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/internal/adapters/inbound/web"
	"github.com/pagelens/pagelens/internal/adapters/outbound/browser"
	configloader "github.com/pagelens/pagelens/internal/adapters/outbound/config"
	"github.com/pagelens/pagelens/internal/adapters/outbound/fetch"
	"github.com/pagelens/pagelens/internal/application"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

func newServeCmd(logger func() zerolog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the audit HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configloader.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log := logger()
			fetcher := fetch.New(cfg.FetchTimeout)
			registry, err := audit.NewRegistry(audits.All(cfg, fetcher)...)
			if err != nil {
				return fmt.Errorf("registering audits: %w", err)
			}

			svc := application.NewAuditService(
				browser.NewDriver(log, true, cfg.NavigationTimeout),
				registry,
				cfg,
				log,
			)

			api := web.NewAPI(log, web.Config{
				Addr:            addr,
				ShutdownTimeout: 10 * time.Second,
			}, svc)
			return api.Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
