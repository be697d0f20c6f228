package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/internal/adapters/outbound/browser"
	configloader "github.com/pagelens/pagelens/internal/adapters/outbound/config"
	"github.com/pagelens/pagelens/internal/adapters/outbound/fetch"
	reportwriter "github.com/pagelens/pagelens/internal/adapters/outbound/report"
	"github.com/pagelens/pagelens/internal/adapters/outbound/tui"
	"github.com/pagelens/pagelens/internal/application"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

func newAuditCmd(logger func() zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		output     string
		screenshot bool
		a11yScript string
		minScore   int
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit one page and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if !strings.Contains(url, "://") {
				url = "https://" + url
			}

			cfg, err := configloader.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if screenshot {
				cfg.Screenshot = true
			}
			if a11yScript != "" {
				cfg.AccessibilityScript = a11yScript
			}
			if output != "" {
				cfg.OutputPath = output
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

			rep, err := svc.Run(cmd.Context(), url)
			if err != nil {
				return err
			}

			if cfg.OutputPath != "" {
				writer := reportwriter.NewWriter()
				if err := writer.Write(rep, cfg.OutputPath); err != nil {
					return err
				}
				if shot, ok := rep.Audits[audits.ScreenshotName].(audits.ScreenshotResult); ok && len(shot.Data) > 0 {
					shotPath := strings.TrimSuffix(cfg.OutputPath, ".json") + ".png"
					if err := writer.WriteScreenshot(shot.Data, shotPath); err != nil {
						return err
					}
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))
			}

			if ciMode && rep.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", rep.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report JSON to this path")
	cmd.Flags().BoolVar(&screenshot, "screenshot", false, "Capture a full-page screenshot")
	cmd.Flags().StringVar(&a11yScript, "a11y-script", "", "Path to an external accessibility rule script")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum overall score for CI mode")

	return cmd
}
