// Package application wires the run orchestrator: navigate, execute the
// registered audits against one run context, aggregate, and project the
// report.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/scoring"
)

// AuditService runs one audit per call. The driven page is an exclusively
// owned resource: page-bound audits execute serially in dependency order,
// while out-of-band audits fan out concurrently, each under the configured
// fetch timeout. After a successful navigation the run never fails; audit
// failures are recorded per name and surface inside the report.
type AuditService struct {
	driver   domain.PageDriver
	registry *audit.Registry
	cfg      domain.Config
	log      zerolog.Logger
}

func NewAuditService(driver domain.PageDriver, registry *audit.Registry, cfg domain.Config, logger zerolog.Logger) *AuditService {
	return &AuditService{
		driver:   driver,
		registry: registry,
		cfg:      cfg,
		log:      logger,
	}
}

// Run audits url and returns the report. The only fatal condition is the
// initial navigation: on failure no audits run and a NavigationError is
// returned with no partial report.
func (s *AuditService) Run(ctx context.Context, url string) (*domain.Report, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Str("url", url).Logger()

	// The driver bounds the load itself; the run context stays free of
	// deadlines so the serial audit chain is never cut off mid-run.
	log.Info().Msg("navigating")
	page, err := s.driver.Navigate(ctx, url)
	if err != nil {
		return nil, &domain.NavigationError{URL: url, Err: err}
	}
	defer func() {
		if cerr := page.Close(context.WithoutCancel(ctx)); cerr != nil {
			log.Warn().Err(cerr).Msg("closing page")
		}
	}()

	rc := audit.NewContext(url, page)
	rc.RunID = runID

	var group errgroup.Group
	for _, a := range s.registry.OutOfBand() {
		group.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
			defer cancel()
			s.invoke(fetchCtx, log, a, rc)
			return nil
		})
	}

	for _, a := range s.registry.PageBound() {
		s.invoke(ctx, log, a, rc)
	}

	_ = group.Wait()
	rc.Duration = time.Since(rc.StartedAt)

	summary := scoring.Aggregate(rc, s.cfg.Budgets)
	report := domain.BuildReport(url, runID, rc.StartedAt, rc.Duration, summary, rc.Slots(), rc.Errors())

	log.Info().
		Int("score", report.Score).
		Str("grade", report.Grade).
		Int("failed_audits", len(rc.Errors())).
		Dur("duration", rc.Duration).
		Msg("audit complete")
	return report, nil
}

// invoke is the single place audit failures are handled: errors and panics
// are recorded against the audit's name and the run continues.
func (s *AuditService) invoke(ctx context.Context, log zerolog.Logger, a audit.Audit, rc *audit.Context) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			rc.RecordError(a.Name(), fmt.Errorf("panic: %v", r))
			log.Error().Str("audit", a.Name()).Any("panic", r).Msg("audit panicked")
		}
	}()

	log.Debug().Str("audit", a.Name()).Msg("audit starting")
	if err := a.Run(ctx, rc); err != nil {
		rc.RecordError(a.Name(), err)
		log.Warn().Str("audit", a.Name()).Err(err).Msg("audit failed")
		return
	}
	log.Debug().Str("audit", a.Name()).Dur("took", time.Since(started)).Msg("audit done")
}
